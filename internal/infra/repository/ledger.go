package repository

import (
	"context"

	"stablebook/internal/domain/loyalty"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"
)

// LedgerRepository appends to the point ledger. There is deliberately no
// update or delete: corrections are posted as new entries.
type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) Append(ctx context.Context, dbtx db.DBTX, entry *loyalty.Entry) error {
	const query = `
		INSERT INTO point_transactions (id, account_id, amount, kind, description, booking_id, reward_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := dbtx.Exec(ctx, query,
		entry.ID(),
		entry.AccountID(),
		entry.Amount(),
		entry.Kind().String(),
		entry.Description(),
		pgconv.UUIDPtrToPgtype(entry.BookingID()),
		pgconv.UUIDPtrToPgtype(entry.RewardID()),
	)
	if err != nil {
		return wrapWriteErr("failed to append ledger entry", err)
	}

	return nil
}
