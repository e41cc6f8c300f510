package repository

import (
	"context"

	"stablebook/internal/domain/reward"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"

	"github.com/google/uuid"
)

type GrantRepository struct{}

func NewGrantRepository() *GrantRepository {
	return &GrantRepository{}
}

func (r *GrantRepository) Create(ctx context.Context, dbtx db.DBTX, g *reward.Grant) error {
	const query = `
		INSERT INTO reward_grants (id, account_id, reward_id, used)
		VALUES ($1, $2, $3, false)
	`

	_, err := dbtx.Exec(ctx, query, g.ID(), g.AccountID(), g.RewardID())
	if err != nil {
		return wrapWriteErr("failed to create reward grant", err)
	}

	return nil
}

// MarkUsed is a one-way transition; an already-used grant is a conflict.
func (r *GrantRepository) MarkUsed(ctx context.Context, dbtx db.DBTX, grantID, bookingID uuid.UUID) error {
	const query = `
		UPDATE reward_grants
		SET used = true, used_booking_id = $2
		WHERE id = $1 AND used = false
	`

	tag, err := dbtx.Exec(ctx, query, grantID, bookingID)
	if err != nil {
		return wrapWriteErr("failed to mark grant used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("grant missing or already used", nil, infra.KindConflict)
	}

	return nil
}
