package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/api/shared"
	"github.com/rmelo/users-api/internal/platform/logger"
	"github.com/rmelo/users-api/internal/service"
	"github.com/rmelo/users-api/internal/service/auth"
	"github.com/rmelo/users-api/internal/validation"
)

// AccountHandler handles the account API requests.
type AccountHandler struct {
	accounts service.AccountService
	tokens   auth.TokenService
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accounts service.AccountService, tokens auth.TokenService) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Register handles POST /register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input validation.UserInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest,
			validation.ErrorList{{Message: "invalid request body"}})
		return
	}

	user, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// Login handles POST /login.
//
// Unknown email and wrong password surface as distinct messages, which
// leaks account existence; the messages are part of the API contract.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input validation.UserInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest,
			validation.ErrorList{{Message: "invalid request body"}})
		return
	}

	user, err := h.accounts.Login(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// ChangePassword handles PUT /change-pass.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var input validation.UserInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest,
			validation.ErrorList{{Message: "invalid request body"}})
		return
	}

	user, err := h.accounts.ChangePassword(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// Search handles GET /.
func (h *AccountHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithErrors(w, r, http.StatusBadRequest,
				validation.ErrorList{{Message: "invalid request body"}})
			return
		}
	}
	if req.Search == "" {
		req.Search = r.URL.Query().Get("search")
	}

	users, err := h.accounts.Search(r.Context(), req.Search)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := UsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, NewUserResponse(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /find/{userID}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest,
			validation.ErrorList{{Message: "invalid user id"}})
		return
	}

	user, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// respondError maps a service error onto the wire: 400 with the error
// list for client failures, sanitized 500 otherwise.
func (h *AccountHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, errList := MapError(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Debug("request failed",
		"status", status,
		"errors", errList.Error(),
		"path", r.URL.Path)

	shared.RespondWithErrors(w, r, status, errList)
}
