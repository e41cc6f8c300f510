package readstore

import (
	"context"

	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"
	"stablebook/internal/usecase/queries"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RewardReadStore struct {
	db db.DBTX
}

func NewRewardReadStore(dbtx db.DBTX) *RewardReadStore {
	return &RewardReadStore{db: dbtx}
}

func (r *RewardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RewardView, error) {
	const query = `
		SELECT id, title, description, reward_type, point_cost,
		       discount_percent, free_service, stock, active
		FROM rewards
		WHERE id = $1
	`

	view, err := scanRewardView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reward by ID", err)
	}

	return view, nil
}

func (r *RewardReadStore) FindActive(ctx context.Context) ([]*queries.RewardView, error) {
	const query = `
		SELECT id, title, description, reward_type, point_cost,
		       discount_percent, free_service, stock, active
		FROM rewards
		WHERE active = true
		ORDER BY point_cost, title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rewards", err)
	}
	defer rows.Close()

	views := []*queries.RewardView{}
	for rows.Next() {
		view, err := scanRewardView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rewards", err)
	}

	return views, nil
}

func (r *RewardReadStore) FindAllWithCounts(ctx context.Context) ([]*queries.RewardAdminView, error) {
	const query = `
		SELECT rw.id, rw.title, rw.description, rw.reward_type, rw.point_cost,
		       rw.discount_percent, rw.free_service, rw.stock, rw.active,
		       COUNT(g.id), rw.created_at, rw.updated_at
		FROM rewards rw
		LEFT JOIN reward_grants g ON g.reward_id = rw.id
		GROUP BY rw.id
		ORDER BY rw.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards with counts", err)
	}
	defer rows.Close()

	views := []*queries.RewardAdminView{}
	for rows.Next() {
		var (
			view            queries.RewardAdminView
			discountPercent pgtype.Int4
			freeService     pgtype.Text
			stock           pgtype.Int4
			createdAt       pgtype.Timestamptz
			updatedAt       pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.Title, &view.Description, &view.RewardType, &view.PointCost,
			&discountPercent, &freeService, &stock, &view.Active,
			&view.RedemptionCount, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward admin row", err)
		}

		view.DiscountPercent = pgconv.Int32PtrFromPgtype(discountPercent)
		view.FreeService = pgconv.StringPtrFromPgtype(freeService)
		view.Stock = pgconv.Int32PtrFromPgtype(stock)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reward admin rows", err)
	}

	return views, nil
}

// ForUpdate locks the reward row so concurrent redemptions of a limited
// stock serialize.
func (r *RewardReadStore) ForUpdate(ctx context.Context, id uuid.UUID) (*shared.RewardSnapshot, error) {
	const query = `
		SELECT id, title, point_cost, stock, active
		FROM rewards
		WHERE id = $1
		FOR UPDATE
	`

	var (
		snap  shared.RewardSnapshot
		stock pgtype.Int4
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Title, &snap.PointCost, &stock, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reward", err)
	}

	snap.Stock = pgconv.Int32PtrFromPgtype(stock)
	return &snap, nil
}

func (r *RewardReadStore) GrantSnapshot(ctx context.Context, id uuid.UUID) (*shared.GrantSnapshot, error) {
	const query = `
		SELECT id, account_id, reward_id, used
		FROM reward_grants
		WHERE id = $1
	`

	var snap shared.GrantSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.AccountID, &snap.RewardID, &snap.Used)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward grant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reward grant", err)
	}

	return &snap, nil
}

func scanRewardView(row interface{ Scan(dest ...any) error }) (*queries.RewardView, error) {
	var (
		view            queries.RewardView
		discountPercent pgtype.Int4
		freeService     pgtype.Text
		stock           pgtype.Int4
	)
	err := row.Scan(
		&view.ID, &view.Title, &view.Description, &view.RewardType, &view.PointCost,
		&discountPercent, &freeService, &stock, &view.Active,
	)
	if err != nil {
		return nil, err
	}

	view.DiscountPercent = pgconv.Int32PtrFromPgtype(discountPercent)
	view.FreeService = pgconv.StringPtrFromPgtype(freeService)
	view.Stock = pgconv.Int32PtrFromPgtype(stock)
	return &view, nil
}
