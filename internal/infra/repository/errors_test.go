//go:build unit

package repository

import (
	"errors"
	"testing"

	"stablebook/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapWriteErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "unique violation becomes conflict",
			err:      &pgconn.PgError{Code: pgErrCodeUniqueViolation},
			wantKind: infra.KindConflict,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: pgErrCodeForeignKeyViolation},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "other postgres error falls back to db failure",
			err:      &pgconn.PgError{Code: "42P01"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "non-postgres error falls back to db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapWriteErr("insert booking", tt.err)
			assert.True(t, infra.IsKind(wrapped, tt.wantKind),
				"expected kind %s, got %v", tt.wantKind, wrapped)
		})
	}
}

func TestWrapAccountCreateErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "duplicate email surfaces as duplicate key",
			err:      &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: accountsEmailKey},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "referral code collision stays a conflict",
			err:      &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "accounts_referral_code_key"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "non-unique errors fall back to db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapAccountCreateErr(tt.err)
			assert.True(t, infra.IsKind(wrapped, tt.wantKind),
				"expected kind %s, got %v", tt.wantKind, wrapped)
		})
	}
}

func TestWrapWriteErrPreservesCause(t *testing.T) {
	cause := &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "booked_slots_pkey"}
	wrapped := wrapWriteErr("reserve slot", cause)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(wrapped, &pgErr))
	assert.Equal(t, "booked_slots_pkey", pgErr.ConstraintName)
}
