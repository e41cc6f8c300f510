package reward

import (
	"time"

	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGrantAlreadyUsed = errs.New("reward grant already used")

// Grant is a redeemed reward held by an account. Immutable once created
// except for the one-way used transition, which links the booking the
// grant was applied to.
type Grant struct {
	id            uuid.UUID
	accountID     uuid.UUID
	rewardID      uuid.UUID
	used          bool
	usedBookingID *uuid.UUID
	createdAt     time.Time
}

func NewGrant(accountID, rewardID uuid.UUID) *Grant {
	return &Grant{
		id:        uuid.New(),
		accountID: accountID,
		rewardID:  rewardID,
	}
}

func ReconstructGrant(id, accountID, rewardID uuid.UUID, used bool, usedBookingID *uuid.UUID, createdAt time.Time) *Grant {
	return &Grant{
		id:            id,
		accountID:     accountID,
		rewardID:      rewardID,
		used:          used,
		usedBookingID: usedBookingID,
		createdAt:     createdAt,
	}
}

func (g *Grant) MarkUsed(bookingID uuid.UUID) error {
	if g.used {
		return ErrGrantAlreadyUsed
	}
	g.used = true
	g.usedBookingID = &bookingID
	return nil
}

func (g *Grant) ID() uuid.UUID             { return g.id }
func (g *Grant) AccountID() uuid.UUID      { return g.accountID }
func (g *Grant) RewardID() uuid.UUID       { return g.rewardID }
func (g *Grant) Used() bool                { return g.used }
func (g *Grant) UsedBookingID() *uuid.UUID { return g.usedBookingID }
func (g *Grant) CreatedAt() time.Time      { return g.createdAt }
