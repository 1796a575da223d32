package api

import (
	"errors"
	"net/http"

	"github.com/rmelo/users-api/internal/service"
	"github.com/rmelo/users-api/internal/store"
	"github.com/rmelo/users-api/internal/validation"
)

// Messages for business-rule failures surfaced to callers.
const (
	msgEmailTaken        = "email already in use"
	msgUserNotFound      = "user not found"
	msgIncorrectPassword = "incorrect password"
	msgNoUsersFound      = "no users found"
)

// MapError translates a service error into an HTTP status and the
// error-list payload. Validation errors and business-rule failures are
// client errors; anything else is internal and must not leak its cause,
// signalled here by a nil list.
func MapError(err error) (int, validation.ErrorList) {
	var errList validation.ErrorList
	if errors.As(err, &errList) {
		return http.StatusBadRequest, errList
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, validation.ErrorList{{Message: msgEmailTaken}}
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusBadRequest, validation.ErrorList{{Message: msgUserNotFound}}
	case errors.Is(err, service.ErrIncorrectPassword):
		return http.StatusBadRequest, validation.ErrorList{{Message: msgIncorrectPassword}}
	case errors.Is(err, service.ErrNoUsersFound):
		return http.StatusBadRequest, validation.ErrorList{{Message: msgNoUsersFound}}
	default:
		return http.StatusInternalServerError, nil
	}
}
