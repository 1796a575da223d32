package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rmelo/users-api/internal/validation"
)

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithErrors writes the error-list payload with the given status.
// The body is an ordered array of {message} objects.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, errs validation.ErrorList) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"errors", errs.Error(),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errs)
}

// RespondWithInternalError writes a generic 500 response and logs the
// underlying cause. The raw error is never echoed to the client.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := GetTraceID(r.Context())

	slog.Error("internal error",
		"error", err,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusInternalServerError,
		validation.ErrorList{{Message: "internal server error"}})
}
