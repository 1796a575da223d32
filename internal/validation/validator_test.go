package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name         string
		input        UserInput
		wantMessages []string
	}{
		{
			name:  "valid input",
			input: UserInput{Name: "Ann Lee", Email: "ann@x.com", Password: "secret1"},
		},
		{
			name:         "empty name short-circuits",
			input:        UserInput{Name: "", Email: "ann@x.com", Password: "secret1"},
			wantMessages: []string{MsgFieldsRequired},
		},
		{
			name:         "empty email short-circuits",
			input:        UserInput{Name: "Ann Lee", Email: "", Password: "secret1"},
			wantMessages: []string{MsgFieldsRequired},
		},
		{
			name:         "empty password short-circuits",
			input:        UserInput{Name: "Ann Lee", Email: "ann@x.com", Password: ""},
			wantMessages: []string{MsgFieldsRequired},
		},
		{
			name:         "short name",
			input:        UserInput{Name: "Al", Email: "ann@x.com", Password: "secret1"},
			wantMessages: []string{MsgNameTooShort},
		},
		{
			name:         "bad email",
			input:        UserInput{Name: "Ann Lee", Email: "not-an-email", Password: "secret1"},
			wantMessages: []string{MsgInvalidEmail},
		},
		{
			name:         "short password",
			input:        UserInput{Name: "Ann Lee", Email: "ann@x.com", Password: "abc"},
			wantMessages: []string{MsgPasswordTooShort},
		},
		{
			name:  "all field rules violated together",
			input: UserInput{Name: "Al", Email: "nope", Password: "abc"},
			wantMessages: []string{
				MsgNameTooShort,
				MsgInvalidEmail,
				MsgPasswordTooShort,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := v.Validate(tt.input, ModeRegistration)

			if len(tt.wantMessages) == 0 {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, errs[i].Message)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("name not required", func(t *testing.T) {
		data, errs := v.Validate(UserInput{Email: "ann@x.com", Password: "secret1"}, ModeLogin)
		require.Empty(t, errs)
		assert.Equal(t, "ann@x.com", data.Email)
	})

	t.Run("short name ignored", func(t *testing.T) {
		_, errs := v.Validate(UserInput{Name: "x", Email: "ann@x.com", Password: "secret1"}, ModeLogin)
		assert.Empty(t, errs)
	})

	t.Run("empty email short-circuits", func(t *testing.T) {
		_, errs := v.Validate(UserInput{Email: "", Password: "secret1"}, ModeLogin)
		require.Len(t, errs, 1)
		assert.Equal(t, MsgFieldsRequired, errs[0].Message)
	})

	t.Run("empty password short-circuits", func(t *testing.T) {
		_, errs := v.Validate(UserInput{Email: "ann@x.com", Password: ""}, ModeLogin)
		require.Len(t, errs, 1)
		assert.Equal(t, MsgFieldsRequired, errs[0].Message)
	})
}

func TestValidateTrimsFields(t *testing.T) {
	t.Parallel()

	v := New()

	data, errs := v.Validate(UserInput{
		Name:     "  Ann Lee  ",
		Email:    " ann@x.com ",
		Password: " secret1 ",
	}, ModeRegistration)

	require.Empty(t, errs)
	assert.Equal(t, "Ann Lee", data.Name)
	assert.Equal(t, "ann@x.com", data.Email)
	assert.Equal(t, "secret1", data.Password)
}

func TestErrorListError(t *testing.T) {
	t.Parallel()

	errs := ErrorList{{Message: "a"}, {Message: "b"}}
	assert.Equal(t, "a; b", errs.Error())
}
