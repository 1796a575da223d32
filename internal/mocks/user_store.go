package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/domain"
	"github.com/rmelo/users-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePasswordFn func(ctx context.Context, email, hashedPassword string) (*domain.User, error)
	FindByNameFn     func(ctx context.Context, term string) ([]*domain.User, error)

	// Data for default implementation
	Users           map[string]*domain.User // keyed by email
	CreateError     error
	GetByEmailError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// UpdatePassword implements the UserStore interface
func (m *MockUserStore) UpdatePassword(
	ctx context.Context,
	email, hashedPassword string,
) (*domain.User, error) {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, email, hashedPassword)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	user.HashedPassword = hashedPassword
	return user, nil
}

// FindByName implements the UserStore interface
func (m *MockUserStore) FindByName(ctx context.Context, term string) ([]*domain.User, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, term)
	}

	var matches []*domain.User
	needle := strings.ToLower(term)
	for _, user := range m.Users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			// Mirror the real store's projection: no password data.
			matches = append(matches, &domain.User{
				ID:        user.ID,
				Name:      user.Name,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
				UpdatedAt: user.UpdatedAt,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})

	return matches, nil
}
