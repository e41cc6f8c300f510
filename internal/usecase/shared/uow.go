package shared

import (
	"context"
	"time"

	"stablebook/internal/domain/account"
	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/internal/domain/horse"
	"stablebook/internal/domain/loyalty"
	"stablebook/internal/domain/reward"
	"stablebook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Accounts() AccountRepository
	Bookings() BookingRepository
	Calendar() CalendarRepository
	Ledger() LedgerRepository
	Rewards() RewardRepository
	Grants() GrantRepository
	Horses() HorseRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the row-level reads command handlers validate against.
// Inside Within they observe the transaction's snapshot; the ForUpdate
// variants additionally take row locks so racing writers serialize.
type CommandReads interface {
	AccountByReferralCode(ctx context.Context, code string) (*AccountSnapshot, error)
	AccountPointsForUpdate(ctx context.Context, id uuid.UUID) (int64, error)
	DayConfig(ctx context.Context, day time.Time) (*calendar.DayConfig, error)
	DayConfigForUpdate(ctx context.Context, day time.Time) (*calendar.DayConfig, error)
	ReservedTimes(ctx context.Context, day time.Time) (map[string]struct{}, error)
	GroupSizeSum(ctx context.Context, day time.Time) (int64, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RewardForUpdate(ctx context.Context, id uuid.UUID) (*RewardSnapshot, error)
	GrantByID(ctx context.Context, id uuid.UUID) (*GrantSnapshot, error)
	ActiveHorseCount(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Minimal snapshots for command read operations
type AccountSnapshot struct {
	ID           uuid.UUID
	Name         string
	Role         string
	Points       int64
	ReferralCode string
	ReferredBy   *uuid.UUID
}

type BookingSnapshot struct {
	ID        uuid.UUID
	Day       time.Time
	SlotTime  string
	GroupSize int32
	Status    string
	AccountID *uuid.UUID
	GrantID   *uuid.UUID
}

type RewardSnapshot struct {
	ID        uuid.UUID
	Title     string
	PointCost int64
	Stock     *int32
	Active    bool
}

type GrantSnapshot struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	RewardID  uuid.UUID
	Used      bool
}

type AccountRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, acc *account.Account) error
	// AddPoints applies a signed delta and returns the new balance.
	// Callers pair every call with a ledger append in the same transaction.
	AddPoints(ctx context.Context, dbtx db.DBTX, accountID uuid.UUID, delta int64) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	// ReserveSlot inserts the (day, slot_time) row; the unique constraint
	// makes the losing racer fail with a conflict kind.
	ReserveSlot(ctx context.Context, dbtx db.DBTX, day time.Time, slotTime string, bookingID uuid.UUID) error
	ReleaseSlot(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	AttachGrant(ctx context.Context, dbtx db.DBTX, id, grantID uuid.UUID) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type CalendarRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, cfg *calendar.DayConfig) error
}

type LedgerRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, entry *loyalty.Entry) error
}

type RewardRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *reward.Reward) error
	Update(ctx context.Context, dbtx db.DBTX, r *reward.Reward) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	// DecrementStock refuses to go below zero; zero rows affected is a
	// conflict surfaced to the caller.
	DecrementStock(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type GrantRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, g *reward.Grant) error
	MarkUsed(ctx context.Context, dbtx db.DBTX, grantID, bookingID uuid.UUID) error
}

type HorseRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, h *horse.Horse) error
	Update(ctx context.Context, dbtx db.DBTX, h *horse.Horse) error
}
