package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(
		config.AdminConfig{Email: "admin@frigyayolu.org", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "test-secret", Expiration: time.Hour},
		nil, nil,
	)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "Admin@frigyayolu.org",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Greater(t, res.ExpiresAt, time.Now().Unix())

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@frigyayolu.org", claims.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@frigyayolu.org",
		Password: "battery-staple",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "intruder@example.com",
		Password: "correct-horse",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService(
		config.AdminConfig{Email: "admin@frigyayolu.org"},
		config.JWTConfig{Secret: "test-secret", Expiration: time.Hour},
		nil, nil,
	)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@frigyayolu.org",
		Password: "anything",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email"})
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestAuthServiceValidateTokenRejectsForgeries(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := NewAuthService(
		config.AdminConfig{Email: "admin@frigyayolu.org", PasswordHash: "x"},
		config.JWTConfig{Secret: "a-different-secret", Expiration: time.Hour},
		nil, nil,
	)
	token, _, err := other.generateToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}
