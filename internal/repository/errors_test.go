package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateMatchesUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	assert.True(t, IsDuplicate(dup))
	assert.True(t, IsDuplicate(fmt.Errorf("could not create user: %w", dup)))
}

func TestIsDuplicateIgnoresOtherErrors(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsDuplicate(errors.New("connection refused")))
	// Other SQLSTATEs (foreign key violation here) are not duplicates.
	assert.False(t, IsDuplicate(&pgconn.PgError{Code: "23503"}))
}
