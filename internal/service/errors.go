package service

import "errors"

// Business-rule errors returned by the account service. Each operation
// short-circuits at the first of these; only validation errors are batched.
var (
	// ErrEmailTaken indicates a registration attempt with an email that
	// already belongs to an account. It also covers the race where two
	// concurrent registrations pass the pre-check and the database unique
	// constraint rejects the second insert.
	ErrEmailTaken = errors.New("email already in use")

	// ErrIncorrectPassword indicates a login attempt with a wrong password
	// for an existing account.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrNoUsersFound indicates a name search that matched no accounts.
	// An empty result is a caller-visible condition, not an empty success.
	ErrNoUsersFound = errors.New("no users found")
)
