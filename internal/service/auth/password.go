package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines hashing and verification of account passwords.
type PasswordHasher interface {
	// Hash derives a salted, one-way hash from the plaintext password.
	// Each call generates a fresh salt, so two hashes of the same input
	// differ.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent using the scheme's own constant-time routine.
	// Returns nil on success, or an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher using the bcrypt default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
