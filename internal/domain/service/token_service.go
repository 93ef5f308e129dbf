package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService mints and validates signed session tokens.
// Expiry is the only invalidation mechanism; there is no revocation list.
type TokenService interface {
	// GenerateToken creates a session token bound to the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the lifetime of issued tokens.
	TokenDuration() time.Duration
}
