package loyalty

import (
	"time"

	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind = errs.New("invalid transaction kind")
	ErrZeroAmount  = errs.New("transaction amount cannot be zero")
)

// Point amounts for the fixed-size triggers.
const (
	SignupBonusPoints   int64 = 100
	ReferralBonusPoints int64 = 200
)

type Kind string

const (
	KindSignupBonus      Kind = "SIGNUP_BONUS"
	KindBookingCompleted Kind = "BOOKING_COMPLETED"
	KindReferralBonus    Kind = "REFERRAL_BONUS"
	KindRewardRedeemed   Kind = "REWARD_REDEEMED"
	KindAdminAdjustment  Kind = "ADMIN_ADJUSTMENT"
)

func NewKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindSignupBonus, KindBookingCompleted, KindReferralBonus, KindRewardRedeemed, KindAdminAdjustment:
		return Kind(value), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Entry is one row of the append-only point ledger. Entries are never
// updated or deleted; corrections are posted as new entries with the
// opposite sign. An account's balance is the sum of its entries.
type Entry struct {
	id          uuid.UUID
	accountID   uuid.UUID
	amount      int64 // signed
	kind        Kind
	description string
	bookingID   *uuid.UUID
	rewardID    *uuid.UUID
	createdAt   time.Time
}

func NewEntry(accountID uuid.UUID, amount int64, kind Kind, description string, bookingID, rewardID *uuid.UUID) (*Entry, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	return &Entry{
		id:          uuid.New(),
		accountID:   accountID,
		amount:      amount,
		kind:        kind,
		description: description,
		bookingID:   bookingID,
		rewardID:    rewardID,
	}, nil
}

func ReconstructEntry(
	id, accountID uuid.UUID,
	amount int64,
	kind Kind,
	description string,
	bookingID, rewardID *uuid.UUID,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		accountID:   accountID,
		amount:      amount,
		kind:        kind,
		description: description,
		bookingID:   bookingID,
		rewardID:    rewardID,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) AccountID() uuid.UUID  { return e.accountID }
func (e *Entry) Amount() int64         { return e.amount }
func (e *Entry) Kind() Kind            { return e.kind }
func (e *Entry) Description() string   { return e.description }
func (e *Entry) BookingID() *uuid.UUID { return e.bookingID }
func (e *Entry) RewardID() *uuid.UUID  { return e.rewardID }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }
