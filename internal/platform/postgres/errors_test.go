package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)),
		"wrapped constraint violations must still be detected")

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("some other error")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsForeignKeyViolation(nil))
}
