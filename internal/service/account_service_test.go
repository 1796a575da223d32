package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmelo/users-api/internal/domain"
	"github.com/rmelo/users-api/internal/mocks"
	"github.com/rmelo/users-api/internal/store"
	"github.com/rmelo/users-api/internal/validation"
)

func newTestService(userStore store.UserStore) AccountService {
	return NewAccountService(
		userStore,
		validation.New(),
		&mocks.MockPasswordHasher{ShouldSucceed: true},
		nil,
	)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	input := validation.UserInput{
		Name:     "Ann Lee",
		Email:    "ann@x.com",
		Password: "secret1",
	}

	t.Run("success", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := newTestService(userStore)

		user, err := svc.Register(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", user.Name)
		assert.Equal(t, "ann@x.com", user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Empty(t, user.Password, "plaintext must not survive registration")
		assert.NotEqual(t, "secret1", user.HashedPassword)
		assert.False(t, strings.Contains("secret1", user.HashedPassword),
			"hash must not be a substring of the plaintext")
	})

	t.Run("validation errors returned as list", func(t *testing.T) {
		svc := newTestService(mocks.NewMockUserStore())

		_, err := svc.Register(context.Background(), validation.UserInput{
			Name:     "Al",
			Email:    "bad",
			Password: "abc",
		})

		var errList validation.ErrorList
		require.ErrorAs(t, err, &errList)
		assert.Len(t, errList, 3)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := newTestService(userStore)

		_, err := svc.Register(context.Background(), input)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Len(t, userStore.Users, 1, "no second record may be created")
	})

	t.Run("race: unique violation at insert maps to conflict", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			// Pre-check sees no user, but a concurrent registration wins.
			return nil, store.ErrUserNotFound
		}
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrEmailExists
		}
		svc := newTestService(userStore)

		_, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*mocks.MockUserStore, *domain.User) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Ann Lee", "ann@x.com", "secret1")
		require.NoError(t, err)
		user.HashedPassword = "hashed:secret1"
		user.Password = ""
		userStore.Users[user.Email] = user
		return userStore, user
	}

	t.Run("success", func(t *testing.T) {
		userStore, seeded := seed(t)
		svc := newTestService(userStore)

		user, err := svc.Login(context.Background(), validation.UserInput{
			Email:    "ann@x.com",
			Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		userStore, _ := seed(t)
		svc := newTestService(userStore)

		_, err := svc.Login(context.Background(), validation.UserInput{
			Email:    "nobody@x.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		userStore, _ := seed(t)
		svc := NewAccountService(
			userStore,
			validation.New(),
			&mocks.MockPasswordHasher{ShouldSucceed: false},
			nil,
		)

		_, err := svc.Login(context.Background(), validation.UserInput{
			Email:    "ann@x.com",
			Password: "wrongpass",
		})
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("validation errors returned as list", func(t *testing.T) {
		svc := newTestService(mocks.NewMockUserStore())

		_, err := svc.Login(context.Background(), validation.UserInput{
			Email:    "",
			Password: "secret1",
		})

		var errList validation.ErrorList
		require.ErrorAs(t, err, &errList)
		assert.Equal(t, validation.MsgFieldsRequired, errList[0].Message)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("success rehashes the submitted password", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Ann Lee", "ann@x.com", "secret1")
		require.NoError(t, err)
		user.HashedPassword = "hashed:secret1"
		user.Password = ""
		userStore.Users[user.Email] = user

		svc := newTestService(userStore)

		updated, err := svc.ChangePassword(context.Background(), validation.UserInput{
			Email:    "ann@x.com",
			Password: "newsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, updated.ID)
		assert.Equal(t, "hashed:newsecret", userStore.Users["ann@x.com"].HashedPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := newTestService(mocks.NewMockUserStore())

		_, err := svc.ChangePassword(context.Background(), validation.UserInput{
			Email:    "nobody@x.com",
			Password: "newsecret",
		})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, names ...string) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		for i, name := range names {
			user, err := domain.NewUser(name, name+string(rune('a'+i))+"@x.com", "secret1")
			require.NoError(t, err)
			user.HashedPassword = "hashed:secret1"
			user.Password = ""
			userStore.Users[user.Email] = user
		}
		return userStore
	}

	t.Run("matches are case-insensitive and sorted by name", func(t *testing.T) {
		userStore := seed(t, "Mariana", "ana", "Bob", "Anastasia")
		svc := newTestService(userStore)

		users, err := svc.Search(context.Background(), "ana")
		require.NoError(t, err)

		names := make([]string, len(users))
		for i, u := range users {
			names[i] = u.Name
		}
		assert.Equal(t, []string{"Anastasia", "Mariana", "ana"}, names)

		for _, u := range users {
			assert.Empty(t, u.HashedPassword, "search projection must exclude password data")
		}
	})

	t.Run("empty result is a not-found condition", func(t *testing.T) {
		svc := newTestService(seed(t, "Bob"))

		_, err := svc.Search(context.Background(), "zzz")
		assert.ErrorIs(t, err, ErrNoUsersFound)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user, err := domain.NewUser("Ann Lee", "ann@x.com", "secret1")
	require.NoError(t, err)
	user.HashedPassword = "hashed:secret1"
	user.Password = ""
	userStore.Users[user.Email] = user

	svc := newTestService(userStore)

	t.Run("found", func(t *testing.T) {
		got, err := svc.Get(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := svc.Get(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
