package api

import (
	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/domain"
)

// Common request/response structures

// SearchRequest defines the payload for the user search endpoint.
// The term may also arrive as a ?search= query parameter, since GET
// bodies are dropped by some intermediaries.
type SearchRequest struct {
	Search string `json:"search"`
}

// AuthResponse defines the successful response for the register and
// login endpoints.
type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

// UserResponse defines the public projection of a user. The password
// hash never appears here.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UsersResponse defines the successful response for the search endpoint.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// NewUserResponse builds the public projection of a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
