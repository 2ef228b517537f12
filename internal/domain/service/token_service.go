// Package service defines domain service contracts implemented by the infra layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the signed tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a principal.
	GenerateTokens(email, role string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature, expiry and structure of a token
	// string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
