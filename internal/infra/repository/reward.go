package repository

import (
	"context"

	"stablebook/internal/domain/reward"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RewardRepository struct{}

func NewRewardRepository() *RewardRepository {
	return &RewardRepository{}
}

func (r *RewardRepository) Create(ctx context.Context, dbtx db.DBTX, rw *reward.Reward) error {
	const query = `
		INSERT INTO rewards (id, title, description, reward_type, point_cost,
		                     discount_percent, free_service, stock, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := dbtx.Exec(ctx, query,
		rw.ID(),
		rw.Title(),
		rw.Description(),
		rw.RewardType().String(),
		rw.PointCost(),
		pgconv.Int32PtrToPgtype(rw.DiscountPercent()),
		freeServiceText(rw),
		pgconv.Int32PtrToPgtype(rw.Stock()),
		rw.Active(),
	)
	if err != nil {
		return wrapWriteErr("failed to create reward", err)
	}

	return nil
}

func (r *RewardRepository) Update(ctx context.Context, dbtx db.DBTX, rw *reward.Reward) error {
	const query = `
		UPDATE rewards
		SET title = $2, description = $3, reward_type = $4, point_cost = $5,
		    discount_percent = $6, free_service = $7, stock = $8, active = $9,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query,
		rw.ID(),
		rw.Title(),
		rw.Description(),
		rw.RewardType().String(),
		rw.PointCost(),
		pgconv.Int32PtrToPgtype(rw.DiscountPercent()),
		freeServiceText(rw),
		pgconv.Int32PtrToPgtype(rw.Stock()),
		rw.Active(),
	)
	if err != nil {
		return wrapWriteErr("failed to update reward", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reward not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RewardRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM rewards WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapWriteErr("failed to delete reward", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reward not found", nil, infra.KindNotFound)
	}

	return nil
}

// DecrementStock only touches tracked stock and never drives it negative;
// zero rows affected means the last unit was taken by a concurrent
// redemption.
func (r *RewardRepository) DecrementStock(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE rewards
		SET stock = stock - 1, updated_at = now()
		WHERE id = $1 AND stock IS NOT NULL AND stock > 0
	`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapWriteErr("failed to decrement reward stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reward out of stock", nil, infra.KindConflict)
	}

	return nil
}

func freeServiceText(rw *reward.Reward) any {
	if rw.FreeService() == nil {
		return nil
	}
	return rw.FreeService().String()
}
