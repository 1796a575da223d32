package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ann Lee", "ann@x.com", "secret1")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ann Lee", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := func() *User {
		return &User{
			ID:       uuid.New(),
			Name:     "Ann Lee",
			Email:    "ann@x.com",
			Password: "secret1",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr error
	}{
		{
			name:   "valid user",
			mutate: func(u *User) {},
		},
		{
			name:    "nil ID",
			mutate:  func(u *User) { u.ID = uuid.Nil },
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "empty name",
			mutate:  func(u *User) { u.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "short name",
			mutate:  func(u *User) { u.Name = "Al" },
			wantErr: ErrNameTooShort,
		},
		{
			name:    "empty email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "invalid email",
			mutate:  func(u *User) { u.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(u *User) { u.Password = "abc" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "long password",
			mutate: func(u *User) {
				long := make([]byte, MaxPasswordLength+1)
				for i := range long {
					long[i] = 'a'
				}
				u.Password = string(long)
			},
			wantErr: ErrPasswordTooLong,
		},
		{
			name: "no password at all",
			mutate: func(u *User) {
				u.Password = ""
				u.HashedPassword = ""
			},
			wantErr: ErrEmptyPassword,
		},
		{
			name: "stored user with hash only",
			mutate: func(u *User) {
				u.Password = ""
				u.HashedPassword = "$2a$10$something"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := valid()
			tt.mutate(user)

			err := user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"ann@x.com", true},
		{"a.b@sub.domain.org", true},
		{"", false},
		{"plain", false},
		{"@x.com", false},
		{"ann@", false},
		{"ann@x", false},
		{"ann@.com", false},
		{"ann@x.", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
