package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
)

func newDraftRouter(store *stubDraftStore) *gin.Engine {
	svc := service.NewDraftService(store, nil, nil)
	h := NewDraftHandler(svc)

	engine := newEngine()
	engine.PUT("/api/registration/draft", h.Save)
	engine.GET("/api/registration/draft", h.Load)
	engine.DELETE("/api/registration/draft", h.Discard)
	return engine
}

func TestDraftHandlerRoundTrip(t *testing.T) {
	store := newStubDraftStore()
	router := newDraftRouter(store)
	headers := map[string]string{form.SessionHeader: "sess-1"}
	raw := `{"version":1,"draft":{"firstName":"Elif"},"lastStep":2}`

	rec, _ := doRequest(t, router, http.MethodPut, "/api/registration/draft", raw, headers)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, env := doRequest(t, router, http.MethodGet, "/api/registration/draft", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, raw, string(env.Data))

	rec, _ = doRequest(t, router, http.MethodDelete, "/api/registration/draft", "", headers)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.drafts)
}

func TestDraftHandlerRequiresSession(t *testing.T) {
	router := newDraftRouter(newStubDraftStore())

	rec, env := doRequest(t, router, http.MethodPut, "/api/registration/draft", `{"version":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorPaths(env), "x-session-id")
}

func TestDraftHandlerLoadMissing(t *testing.T) {
	router := newDraftRouter(newStubDraftStore())

	rec, env := doRequest(t, router, http.MethodGet, "/api/registration/draft", "",
		map[string]string{form.SessionHeader: "sess-unknown"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestDraftHandlerSaveRejectsVersionMismatch(t *testing.T) {
	router := newDraftRouter(newStubDraftStore())

	rec, env := doRequest(t, router, http.MethodPut, "/api/registration/draft", `{"version":9}`,
		map[string]string{form.SessionHeader: "sess-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorPaths(env), "version")
}
