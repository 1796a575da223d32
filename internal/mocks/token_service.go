package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	Token string
	Err   error

	// Function fields for customizable behavior
	GenerateFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockTokenService implements auth.TokenService
var _ auth.TokenService = (*MockTokenService)(nil)

// Generate implements the TokenService interface
func (m *MockTokenService) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, userID)
	}
	return m.Token, m.Err
}

// Validate implements the TokenService interface
func (m *MockTokenService) Validate(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.Claims{}, nil
}
