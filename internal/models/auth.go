package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload issued on admin login.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
