package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and validating signed
// authentication tokens.
type TokenService interface {
	// Generate creates a signed, time-limited token bound to the given
	// user ID. Returns the token string or an error if signing fails.
	Generate(ctx context.Context, userID uuid.UUID) (string, error)

	// Validate checks the provided token string and extracts the claims.
	// Returns an error if validation fails (expired, invalid signature,
	// malformed token).
	Validate(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded token claims.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
