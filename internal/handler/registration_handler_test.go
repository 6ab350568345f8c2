package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
)

func newRegistrationRouter(repo *stubSubmissionRepo) *gin.Engine {
	svc := service.NewRegistrationService(repo, nil, nil, nil, nil, nil)
	engine := newEngine()
	engine.POST("/api/registration", NewRegistrationHandler(svc).Submit)
	return engine
}

func TestRegistrationHandlerSubmit(t *testing.T) {
	repo := &stubSubmissionRepo{}
	router := newRegistrationRouter(repo)

	rec, env := doRequest(t, router, http.MethodPost, "/api/registration", validSubmissionBody(),
		map[string]string{form.SessionHeader: "sess-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, repo.created)

	var data dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "reg-1", data.RegistrationID)
}

func TestRegistrationHandlerSubmitWithoutSession(t *testing.T) {
	router := newRegistrationRouter(&stubSubmissionRepo{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/registration", validSubmissionBody(), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorPaths(env), "x-session-id")
}

func TestRegistrationHandlerSubmitMalformedJSON(t *testing.T) {
	router := newRegistrationRouter(&stubSubmissionRepo{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/registration", "{not json",
		map[string]string{form.SessionHeader: "sess-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body is not valid JSON", env.Message)
}

func TestRegistrationHandlerSubmitValidationFailure(t *testing.T) {
	repo := &stubSubmissionRepo{}
	router := newRegistrationRouter(repo)

	rec, env := doRequest(t, router, http.MethodPost, "/api/registration", `{"email":"broken"}`,
		map[string]string{form.SessionHeader: "sess-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, repo.created)
	paths := errorPaths(env)
	assert.Contains(t, paths, "email")
	assert.Contains(t, paths, "motivation")
	assert.Contains(t, paths, "terms_accepted")
}
