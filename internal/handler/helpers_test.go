package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the wire response shape for assertions.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Path    []string `json:"path"`
		Message string   `json:"message"`
	} `json:"errors"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Message    string                 `json:"message"`
	Pagination *models.Pagination     `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func errorPaths(env envelope) []string {
	paths := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		paths = append(paths, fe.Path...)
	}
	return paths
}

func newEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Session(form.SessionHeader))
	return engine
}

type stubSubmissionRepo struct {
	created int
	byID    *models.Registration
	rows    []models.RegistrationRow
	total   int
}

func (r *stubSubmissionRepo) CreateSubmission(_ context.Context, _ *models.User, reg *models.Registration) (*models.Registration, error) {
	r.created++
	stored := *reg
	stored.ID = "reg-1"
	return &stored, nil
}

func (r *stubSubmissionRepo) FindByID(_ context.Context, _ string) (*models.Registration, error) {
	return r.byID, nil
}

func (r *stubSubmissionRepo) List(_ context.Context, _ models.RegistrationFilter) ([]models.RegistrationRow, int, error) {
	return r.rows, r.total, nil
}

type stubDraftStore struct {
	drafts map[string]string
}

func newStubDraftStore() *stubDraftStore {
	return &stubDraftStore{drafts: make(map[string]string)}
}

func (s *stubDraftStore) Get(_ context.Context, sessionID string) (string, error) {
	raw, ok := s.drafts[sessionID]
	if !ok {
		return "", appErrors.ErrCacheMiss
	}
	return raw, nil
}

func (s *stubDraftStore) Set(_ context.Context, sessionID, raw string) error {
	s.drafts[sessionID] = raw
	return nil
}

func (s *stubDraftStore) Delete(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("trail-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	return service.NewAuthService(
		config.AdminConfig{Email: "admin@frigyayolu.org", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "handler-test-secret", Expiration: time.Hour},
		nil, nil,
	)
}

func validSubmissionBody() string {
	body := map[string]interface{}{
		"interested_in":     "eastern",
		"timeframe":         "next_3_months",
		"group_type":        "solo",
		"first_name":        "Zeynep",
		"last_name":         "Arslan",
		"email":             "zeynep@example.com",
		"phone":             "+905551234567",
		"fitness_level":     4,
		"hiking_experience": "multi_day",
		"motivation":        strings.Repeat("mountains ", 50),
		"goals":             []string{"adventure"},
		"how_did_you_hear":  "friend",
		"terms_accepted":    true,
		"data_processing":   true,
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}
