package booking

import (
	"time"

	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPastDate          = errs.New("booking date is in the past")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrDuplicateHorse    = errs.New("duplicate horse selection")
	ErrTooManyHorses     = errs.New("more horses than riders")
)

// Booking is the reservation aggregate. A booking always commits together
// with its slot row; the pair is written in one transaction by the
// admission path.
type Booking struct {
	id          uuid.UUID
	service     ServiceType
	day         time.Time
	slotTime    SlotTime
	groupSize   GroupSize
	contact     Contact
	experience  ExperienceLevel
	status      Status
	horseIDs    []uuid.UUID
	accountID   *uuid.UUID
	grantID     *uuid.UUID
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	service ServiceType,
	day time.Time,
	slotTime SlotTime,
	groupSize GroupSize,
	contact Contact,
	experience ExperienceLevel,
	horseIDs []uuid.UUID,
	accountID *uuid.UUID,
	notes string,
	now time.Time,
) (*Booking, error) {
	if day.Before(Day(now)) {
		return nil, ErrPastDate
	}
	if err := validateHorses(horseIDs, groupSize); err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		service:    service,
		day:        Day(day),
		slotTime:   slotTime,
		groupSize:  groupSize,
		contact:    contact,
		experience: experience,
		status:     StatusPending,
		horseIDs:   horseIDs,
		accountID:  accountID,
		notes:      notes,
	}, nil
}

func validateHorses(horseIDs []uuid.UUID, groupSize GroupSize) error {
	seen := make(map[uuid.UUID]struct{}, len(horseIDs))
	for _, id := range horseIDs {
		if _, dup := seen[id]; dup {
			return ErrDuplicateHorse
		}
		seen[id] = struct{}{}
	}
	if int32(len(horseIDs)) > groupSize.Value() {
		return ErrTooManyHorses
	}
	return nil
}

func ReconstructBooking(
	id uuid.UUID,
	service ServiceType,
	day time.Time,
	slotTime SlotTime,
	groupSize GroupSize,
	contact Contact,
	experience ExperienceLevel,
	status Status,
	horseIDs []uuid.UUID,
	accountID, grantID *uuid.UUID,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		service:    service,
		day:        day,
		slotTime:   slotTime,
		groupSize:  groupSize,
		contact:    contact,
		experience: experience,
		status:     status,
		horseIDs:   horseIDs,
		accountID:  accountID,
		grantID:    grantID,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo validates and applies a status change.
func (b *Booking) TransitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Confirm is the admin path that creates a booking already confirmed.
func (b *Booking) Confirm() {
	if b.status == StatusPending {
		b.status = StatusConfirmed
	}
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsCompleted() bool {
	return b.status == StatusCompleted
}

func (b *Booking) AttachGrant(grantID uuid.UUID) {
	b.grantID = &grantID
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Service() ServiceType        { return b.service }
func (b *Booking) DayDate() time.Time          { return b.day }
func (b *Booking) SlotTime() SlotTime          { return b.slotTime }
func (b *Booking) GroupSize() GroupSize        { return b.groupSize }
func (b *Booking) Contact() Contact            { return b.contact }
func (b *Booking) Experience() ExperienceLevel { return b.experience }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) HorseIDs() []uuid.UUID       { return b.horseIDs }
func (b *Booking) AccountID() *uuid.UUID       { return b.accountID }
func (b *Booking) GrantID() *uuid.UUID         { return b.grantID }
func (b *Booking) Notes() string               { return b.notes }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
