package readstore

import (
	"context"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"
	"stablebook/internal/usecase/queries"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, service, day, slot_time, group_size,
		       contact_name, contact_phone, contact_email,
		       experience, status, account_id, grant_id, notes,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var (
		view      queries.BookingView
		day       pgtype.Date
		accountID pgtype.UUID
		grantID   pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Service, &day, &view.SlotTime, &view.GroupSize,
		&view.ContactName, &view.ContactPhone, &view.ContactEmail,
		&view.Experience, &view.Status, &accountID, &grantID, &view.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.Day = pgconv.DateFromPgtype(day)
	view.AccountID = pgconv.UUIDPtrFromPgtype(accountID)
	view.GrantID = pgconv.UUIDPtrFromPgtype(grantID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	horses, err := r.findHorses(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Horses = horses

	return &view, nil
}

func (r *BookingReadStore) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, service, day, slot_time, group_size, status, created_at
		FROM bookings
		WHERE account_id = $1
		ORDER BY day DESC, slot_time DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by account", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByDayRange(ctx context.Context, from, to time.Time) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, service, day, slot_time, group_size, status, created_at
		FROM bookings
		WHERE day >= $1 AND day <= $2
		ORDER BY day, slot_time
	`

	rows, err := r.db.Query(ctx, query, pgconv.DateToPgtype(booking.Day(from)), pgconv.DateToPgtype(booking.Day(to)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by day range", err)
	}
	return scanBookingListItems(rows)
}

// Snapshot reads the command-side view of a booking.
func (r *BookingReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, day, slot_time, group_size, status, account_id, grant_id
		FROM bookings
		WHERE id = $1
	`

	var (
		snap      shared.BookingSnapshot
		day       pgtype.Date
		accountID pgtype.UUID
		grantID   pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &day, &snap.SlotTime, &snap.GroupSize, &snap.Status, &accountID, &grantID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}

	snap.Day = pgconv.DateFromPgtype(day)
	snap.AccountID = pgconv.UUIDPtrFromPgtype(accountID)
	snap.GrantID = pgconv.UUIDPtrFromPgtype(grantID)
	return &snap, nil
}

func (r *BookingReadStore) findHorses(ctx context.Context, bookingID uuid.UUID) ([]*queries.BookingHorseView, error) {
	const query = `
		SELECT h.id, h.name
		FROM booking_horses bh
		JOIN horses h ON h.id = bh.horse_id
		WHERE bh.booking_id = $1
		ORDER BY h.name
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking horses", err)
	}
	defer rows.Close()

	horses := []*queries.BookingHorseView{}
	for rows.Next() {
		var h queries.BookingHorseView
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking horse", err)
		}
		horses = append(horses, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking horses", err)
	}

	return horses, nil
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

func scanBookingListItems(rows pgRows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var (
			item      queries.BookingListItem
			day       pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Service, &day, &item.SlotTime, &item.GroupSize, &item.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.Day = pgconv.DateFromPgtype(day)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return items, nil
}
