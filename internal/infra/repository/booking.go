package repository

import (
	"context"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts the booking row and its horse links. The slot row is a
// separate ReserveSlot call so the admission path controls write order
// inside its transaction.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, service, day, slot_time, group_size,
		                      contact_name, contact_phone, contact_email,
		                      experience, status, account_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := dbtx.Exec(ctx, query,
		b.ID(),
		b.Service().String(),
		pgconv.DateToPgtype(b.DayDate()),
		b.SlotTime().Value(),
		b.GroupSize().Value(),
		b.Contact().Name(),
		b.Contact().Phone(),
		b.Contact().Email(),
		b.Experience().String(),
		b.Status().String(),
		pgconv.UUIDPtrToPgtype(b.AccountID()),
		b.Notes(),
	)
	if err != nil {
		return wrapWriteErr("failed to create booking", err)
	}

	const linkQuery = `INSERT INTO booking_horses (booking_id, horse_id) VALUES ($1, $2)`
	for _, horseID := range b.HorseIDs() {
		if _, err := dbtx.Exec(ctx, linkQuery, b.ID(), horseID); err != nil {
			return wrapWriteErr("failed to link horse to booking", err)
		}
	}

	return nil
}

func (r *BookingRepository) ReserveSlot(ctx context.Context, dbtx db.DBTX, day time.Time, slotTime string, bookingID uuid.UUID) error {
	const query = `INSERT INTO booked_slots (day, slot_time, booking_id) VALUES ($1, $2, $3)`

	_, err := dbtx.Exec(ctx, query, pgconv.DateToPgtype(day), slotTime, bookingID)
	if err != nil {
		return wrapWriteErr("failed to reserve slot", err)
	}

	return nil
}

func (r *BookingRepository) ReleaseSlot(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error {
	const query = `DELETE FROM booked_slots WHERE booking_id = $1`

	if _, err := dbtx.Exec(ctx, query, bookingID); err != nil {
		return wrapWriteErr("failed to release slot", err)
	}

	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) AttachGrant(ctx context.Context, dbtx db.DBTX, id, grantID uuid.UUID) error {
	const query = `UPDATE bookings SET grant_id = $2, updated_at = now() WHERE id = $1 AND grant_id IS NULL`

	tag, err := dbtx.Exec(ctx, query, id, grantID)
	if err != nil {
		return wrapWriteErr("failed to attach grant to booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking missing or grant already attached", nil, infra.KindConflict)
	}

	return nil
}

// Delete removes the booking; slot and horse-link rows go with it via
// ON DELETE CASCADE.
func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
