package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects which presence and field rules apply to an input.
type Mode int

const (
	// ModeRegistration requires name, email and password.
	ModeRegistration Mode = iota
	// ModeLogin requires email and password; name is ignored.
	ModeLogin
)

// Messages returned to callers. These are part of the API contract.
const (
	MsgFieldsRequired   = "all fields are required"
	MsgNameTooShort     = "name must be at least 3 characters long"
	MsgInvalidEmail     = "invalid email format"
	MsgPasswordTooShort = "password must be at least 6 characters long"
)

// UserInput is the raw, untrusted shape submitted by a caller.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FieldError is a single human-readable validation message.
type FieldError struct {
	Message string `json:"message"`
}

// ErrorList is an ordered list of validation messages. An empty list
// means success. It implements error so services can return it directly.
type ErrorList []FieldError

// Error implements the error interface.
func (e ErrorList) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// registrationRules carries the field-level constraints for registration.
// Presence is checked separately so that a missing field short-circuits
// with a single message instead of tripping every rule.
type registrationRules struct {
	Name     string `validate:"min=3"`
	Email    string `validate:"email"`
	Password string `validate:"min=6"`
}

// loginRules carries the field-level constraints for login; the name is
// not required and therefore not checked.
type loginRules struct {
	Email    string `validate:"email"`
	Password string `validate:"min=6"`
}

// Validator turns raw input into sanitized user data or a list of field
// errors. It is a pure function of its input and safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the input under the given mode. On success it returns
// the sanitized input (all fields trimmed) and an empty list. On failure
// the returned list carries one message per violated rule, except that a
// failed presence check short-circuits with a single message.
func (v *Validator) Validate(input UserInput, mode Mode) (UserInput, ErrorList) {
	if missingFields(input, mode) {
		return UserInput{}, ErrorList{{Message: MsgFieldsRequired}}
	}

	sanitized := UserInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: strings.TrimSpace(input.Password),
	}

	var err error
	switch mode {
	case ModeLogin:
		err = v.validate.Struct(loginRules{
			Email:    sanitized.Email,
			Password: sanitized.Password,
		})
	default:
		err = v.validate.Struct(registrationRules{
			Name:     sanitized.Name,
			Email:    sanitized.Email,
			Password: sanitized.Password,
		})
	}

	if err == nil {
		return sanitized, nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.Struct only fails this way on a non-struct argument,
		// which would be a programming error here.
		return UserInput{}, ErrorList{{Message: MsgFieldsRequired}}
	}

	var errs ErrorList
	for _, violation := range violations {
		errs = append(errs, FieldError{Message: messageFor(violation.Field())})
	}
	return UserInput{}, errs
}

// missingFields reports whether any field required by the mode is empty.
func missingFields(input UserInput, mode Mode) bool {
	if input.Email == "" || input.Password == "" {
		return true
	}
	return mode == ModeRegistration && input.Name == ""
}

// messageFor maps a violated field to its caller-visible message.
func messageFor(field string) string {
	switch field {
	case "Name":
		return MsgNameTooShort
	case "Email":
		return MsgInvalidEmail
	case "Password":
		return MsgPasswordTooShort
	default:
		return "invalid " + strings.ToLower(field)
	}
}
