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

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

func (r *AccountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	const query = `
		SELECT id, email, name, role, points, referral_code, referred_by, created_at
		FROM accounts
		WHERE id = $1
	`

	var (
		view       queries.AccountView
		referredBy pgtype.UUID
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role,
		&view.Points, &view.ReferralCode, &referredBy, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by ID", err)
	}

	view.ReferredBy = pgconv.UUIDPtrFromPgtype(referredBy)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *AccountReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedAccountView, string, error) {
	const query = `
		SELECT id, email, role, password_hash
		FROM accounts
		WHERE email = $1
	`

	var (
		view queries.AuthorizedAccountView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Email, &view.Role, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err)
	}

	return &view, hash, nil
}

func (r *AccountReadStore) PointHistory(ctx context.Context, accountID uuid.UUID) (*queries.PointHistoryView, error) {
	const balanceQuery = `SELECT points FROM accounts WHERE id = $1`

	history := &queries.PointHistoryView{Entries: []*queries.PointEntryView{}}
	if err := r.db.QueryRow(ctx, balanceQuery, accountID).Scan(&history.Balance); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read account balance", err)
	}

	const entriesQuery = `
		SELECT id, amount, kind, description, booking_id, reward_id, created_at
		FROM point_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, entriesQuery, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read point history", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     queries.PointEntryView
			bookingID pgtype.UUID
			rewardID  pgtype.UUID
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&entry.ID, &entry.Amount, &entry.Kind, &entry.Description, &bookingID, &rewardID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan point entry", err)
		}
		entry.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
		entry.RewardID = pgconv.UUIDPtrFromPgtype(rewardID)
		entry.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		history.Entries = append(history.Entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate point history", err)
	}

	return history, nil
}

func (r *AccountReadStore) Grants(ctx context.Context, accountID uuid.UUID) ([]*queries.GrantView, error) {
	const query = `
		SELECT g.id, g.reward_id, rw.title, g.used, g.used_booking_id, g.created_at
		FROM reward_grants g
		JOIN rewards rw ON rw.id = g.reward_id
		WHERE g.account_id = $1
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reward grants", err)
	}
	defer rows.Close()

	grants := []*queries.GrantView{}
	for rows.Next() {
		var (
			grant         queries.GrantView
			usedBookingID pgtype.UUID
			createdAt     pgtype.Timestamptz
		)
		if err := rows.Scan(&grant.ID, &grant.RewardID, &grant.RewardTitle, &grant.Used, &usedBookingID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward grant", err)
		}
		grant.UsedBookingID = pgconv.UUIDPtrFromPgtype(usedBookingID)
		grant.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		grants = append(grants, &grant)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reward grants", err)
	}

	return grants, nil
}

// SnapshotByReferralCode reads the command-side view of the referrer.
func (r *AccountReadStore) SnapshotByReferralCode(ctx context.Context, code string) (*shared.AccountSnapshot, error) {
	const query = `
		SELECT id, name, role, points, referral_code, referred_by
		FROM accounts
		WHERE referral_code = $1
	`
	return r.scanSnapshot(r.db.QueryRow(ctx, query, code))
}

// PointsForUpdate locks the account row so a concurrent redemption
// serializes behind this transaction.
func (r *AccountReadStore) PointsForUpdate(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `SELECT points FROM accounts WHERE id = $1 FOR UPDATE`

	var points int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&points); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to lock account points", err)
	}

	return points, nil
}

func (r *AccountReadStore) scanSnapshot(row interface{ Scan(dest ...any) error }) (*shared.AccountSnapshot, error) {
	var (
		snap       shared.AccountSnapshot
		referredBy pgtype.UUID
	)
	err := row.Scan(&snap.ID, &snap.Name, &snap.Role, &snap.Points, &snap.ReferralCode, &referredBy)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read account snapshot", err)
	}

	snap.ReferredBy = pgconv.UUIDPtrFromPgtype(referredBy)
	return &snap, nil
}
