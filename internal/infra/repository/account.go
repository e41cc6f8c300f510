package repository

import (
	"context"
	"errors"

	"stablebook/internal/domain/account"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const accountsEmailKey = "accounts_email_key"

type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(ctx context.Context, dbtx db.DBTX, acc *account.Account) error {
	const query = `
		INSERT INTO accounts (id, email, password_hash, name, role, points, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := dbtx.Exec(ctx, query,
		acc.ID(),
		acc.Email().Value(),
		acc.PasswordHash(),
		acc.Name(),
		acc.Role().String(),
		acc.Points(),
		acc.ReferralCode().Value(),
		pgconv.UUIDPtrToPgtype(acc.ReferredBy()),
	)
	if err != nil {
		return wrapAccountCreateErr(err)
	}

	return nil
}

// wrapAccountCreateErr tells the two unique indexes on accounts apart.
// A duplicate email is the caller's mistake; a duplicate referral code
// means the generated code collided and the signup should retry.
func wrapAccountCreateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgErrCodeUniqueViolation &&
		pgErr.ConstraintName == accountsEmailKey {
		return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
	}
	return wrapWriteErr("failed to create account", err)
}

func (r *AccountRepository) AddPoints(ctx context.Context, dbtx db.DBTX, accountID uuid.UUID, delta int64) (int64, error) {
	const query = `
		UPDATE accounts
		SET points = points + $2, updated_at = now()
		WHERE id = $1
		RETURNING points
	`

	var balance int64
	err := dbtx.QueryRow(ctx, query, accountID, delta).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return 0, wrapWriteErr("failed to update account points", err)
	}

	return balance, nil
}
