package mocks

import (
	"errors"

	"github.com/rmelo/users-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Hash prefixes the plaintext so tests can observe what was hashed
// without paying bcrypt cost; Compare succeeds when ShouldSucceed is set.
type MockPasswordHasher struct {
	ShouldSucceed bool
	HashErr       error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
