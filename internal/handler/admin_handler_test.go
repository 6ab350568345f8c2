package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
)

func newAdminRouter(t *testing.T, repo *stubSubmissionRepo) (*gin.Engine, *service.AuthService) {
	t.Helper()
	auth := newTestAuthService(t)
	registrations := service.NewRegistrationService(repo, nil, nil, nil, nil, nil)
	h := NewAdminHandler(auth, registrations, nil)

	engine := newEngine()
	admin := engine.Group("/api/admin")
	admin.POST("/login", h.Login)

	secured := admin.Group("")
	secured.Use(middleware.AdminJWT(auth))
	secured.GET("/registrations", h.ListRegistrations)
	secured.GET("/registrations/:id", h.GetRegistration)
	return engine, auth
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec, env := doRequest(t, router, http.MethodPost, "/api/admin/login",
		`{"email":"admin@frigyayolu.org","password":"trail-pass"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestAdminHandlerLogin(t *testing.T) {
	router, _ := newAdminRouter(t, &stubSubmissionRepo{})

	token := loginToken(t, router)
	assert.NotEmpty(t, token)
}

func TestAdminHandlerLoginRejected(t *testing.T) {
	router, _ := newAdminRouter(t, &stubSubmissionRepo{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/admin/login",
		`{"email":"admin@frigyayolu.org","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAdminHandlerListRegistrations(t *testing.T) {
	repo := &stubSubmissionRepo{
		rows:  []models.RegistrationRow{{Email: "a@example.com", FirstName: "Elif"}},
		total: 41,
	}
	router, _ := newAdminRouter(t, repo)
	token := loginToken(t, router)

	rec, env := doRequest(t, router, http.MethodGet, "/api/admin/registrations?page=2&page_size=20", "",
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 41, env.Pagination.TotalCount)
	assert.Contains(t, string(env.Data), "a@example.com")
}

func TestAdminHandlerRequiresToken(t *testing.T) {
	router, _ := newAdminRouter(t, &stubSubmissionRepo{})

	rec, _ := doRequest(t, router, http.MethodGet, "/api/admin/registrations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/admin/registrations", "",
		map[string]string{"Authorization": "Bearer forged.token.here"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandlerGetRegistration(t *testing.T) {
	repo := &stubSubmissionRepo{byID: &models.Registration{
		ID:     "reg-5",
		Status: models.StatusPending,
		Step:   4,
	}}
	router, _ := newAdminRouter(t, repo)
	token := loginToken(t, router)

	rec, env := doRequest(t, router, http.MethodGet, "/api/admin/registrations/reg-5", "",
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, rec.Code)
	var reg models.Registration
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.Equal(t, "reg-5", reg.ID)
}
