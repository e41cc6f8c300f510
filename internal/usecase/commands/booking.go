package commands

import (
	"context"
	"time"

	"stablebook/internal/domain/account"
	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/internal/infra"
	"stablebook/internal/pkg/clock"
	"stablebook/internal/pkg/config"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/usecase/queries"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDateBlocked            = errs.New("date is blocked")
	ErrSlotUnavailable        = errs.New("slot unavailable")
	ErrCapacityExceeded       = errs.New("day capacity exceeded")
	ErrHorseUnavailable       = errs.New("horse unavailable")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrBookingNotOwned        = errs.New("booking not owned by account")
	ErrInvalidStatusChange    = errs.New("invalid status change")
	ErrBookingHasLedger       = errs.New("booking has ledger entries")
	ErrGrantNotFound          = errs.New("reward grant not found")
	ErrGrantNotOwned          = errs.New("reward grant not owned by account")
	ErrGrantAlreadyUsed       = errs.New("reward grant already used")
	ErrGrantAlreadyAttached   = errs.New("booking already has a grant")
	ErrBookingNotOpenForGrant = errs.New("booking cannot accept a grant")
)

// SlotUnavailableError carries the still-open times for the requested
// day so the caller can offer alternatives.
type SlotUnavailableError struct {
	OpenTimes []string
}

func (e *SlotUnavailableError) Error() string { return "slot unavailable" }
func (e *SlotUnavailableError) Unwrap() error { return ErrSlotUnavailable }

type SubmitBookingRequest struct {
	Service      string
	Day          time.Time
	SlotTime     string
	GroupSize    int32
	ContactName  string
	ContactPhone string
	ContactEmail string
	Experience   string
	HorseIDs     []uuid.UUID
	Notes        string
	// Staff-created bookings start confirmed instead of pending.
	Confirmed bool
}

type SubmitBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Submit(ctx context.Context, req SubmitBookingRequest, accountID *uuid.UUID) (*SubmitBookingResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, nextStatus string, actorID uuid.UUID, actorRole account.Role) error
	ApplyGrant(ctx context.Context, bookingID, grantID, actorID uuid.UUID, actorRole account.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.AvailabilityCache
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, cache queries.AvailabilityCache, cfg config.BookingConfig, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, cache: cache, cfg: cfg, clock: clk}
}

// Submit runs the admission sequence: the day must be configured and not
// blocked, the requested time must be a configured slot nobody holds,
// and the day's headcount ceiling must not be exceeded. The slot row
// insert is the arbiter when two submissions race; the loser's
// transaction fails on the unique key and surfaces as unavailable.
func (uc *bookingUseCaseImpl) Submit(ctx context.Context, req SubmitBookingRequest, accountID *uuid.UUID) (*SubmitBookingResult, error) {
	entity, err := uc.buildBooking(req, accountID)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := uc.loadDayConfig(ctx, tx, entity.DayDate())
		if err != nil {
			return err
		}
		if cfg.Blocked() {
			return ErrDateBlocked
		}

		reserved, err := tx.Reads().ReservedTimes(ctx, entity.DayDate())
		if err != nil {
			return err
		}
		if !cfg.HasSlot(entity.SlotTime()) {
			return openTimesError(cfg, reserved)
		}
		if _, taken := reserved[entity.SlotTime().Value()]; taken {
			return openTimesError(cfg, reserved)
		}

		if cfg.Capacity() != nil {
			// The ceiling spans all slots of the day, so the unique slot key
			// cannot arbitrate it. Lock the day row and re-read the sum;
			// racing capacity checks queue up behind the lock.
			locked, err := tx.Reads().DayConfigForUpdate(ctx, entity.DayDate())
			if err != nil {
				return err
			}
			if ceiling := locked.Capacity(); ceiling != nil {
				sum, err := tx.Reads().GroupSizeSum(ctx, entity.DayDate())
				if err != nil {
					return err
				}
				if sum+int64(entity.GroupSize().Value()) > int64(*ceiling) {
					return ErrCapacityExceeded
				}
			}
		}

		if ids := entity.HorseIDs(); len(ids) > 0 {
			count, err := tx.Reads().ActiveHorseCount(ctx, ids)
			if err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return ErrHorseUnavailable
			}
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
			return err
		}
		if err := tx.Bookings().ReserveSlot(ctx, tx.DB(), entity.DayDate(), entity.SlotTime().Value(), entity.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race after our read; report as taken.
				return openTimesError(cfg, reserved)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, entity.DayDate())
	return &SubmitBookingResult{BookingID: entity.ID()}, nil
}

func (uc *bookingUseCaseImpl) buildBooking(req SubmitBookingRequest, accountID *uuid.UUID) (*booking.Booking, error) {
	service, err := booking.NewServiceType(req.Service)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewSlotTime(req.SlotTime)
	if err != nil {
		return nil, err
	}
	size, err := booking.NewGroupSize(req.GroupSize)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContact(req.ContactName, req.ContactPhone, req.ContactEmail)
	if err != nil {
		return nil, err
	}
	experience, err := booking.NewExperienceLevel(req.Experience)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(service, req.Day, slot, size, contact, experience, req.HorseIDs, accountID, req.Notes, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if req.Confirmed {
		entity.Confirm()
	}
	return entity, nil
}

// loadDayConfig maps a missing calendar row to the default config, which
// has no slots and therefore admits nothing.
func (uc *bookingUseCaseImpl) loadDayConfig(ctx context.Context, tx shared.Tx, day time.Time) (*calendar.DayConfig, error) {
	cfg, err := tx.Reads().DayConfig(ctx, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return calendar.DefaultDayConfig(day), nil
		}
		return nil, err
	}
	return cfg, nil
}

func openTimesError(cfg *calendar.DayConfig, reserved map[string]struct{}) error {
	open := cfg.AvailableTimes(reserved)
	times := make([]string, 0, len(open))
	for _, t := range open {
		times = append(times, t.Value())
	}
	return &SlotUnavailableError{OpenTimes: times}
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, nextStatus string, actorID uuid.UUID, actorRole account.Role) error {
	next, err := booking.NewStatus(nextStatus)
	if err != nil {
		return err
	}

	var day time.Time
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		day = snap.Day

		if !actorRole.CanManage() {
			// Riders may only cancel their own bookings.
			if snap.AccountID == nil || *snap.AccountID != actorID {
				return ErrBookingNotOwned
			}
			if next != booking.StatusCancelled {
				return ErrInvalidStatusChange
			}
		}

		current, err := booking.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(next) {
			return ErrInvalidStatusChange
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, next); err != nil {
			return err
		}
		if next == booking.StatusCancelled && uc.cfg.FreeSlotOnCancel {
			return tx.Bookings().ReleaseSlot(ctx, tx.DB(), id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, day)
	return nil
}

// ApplyGrant attaches a redeemed reward to a booking and marks the
// grant used, both in one transaction.
func (uc *bookingUseCaseImpl) ApplyGrant(ctx context.Context, bookingID, grantID, actorID uuid.UUID, actorRole account.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		grant, err := tx.Reads().GrantByID(ctx, grantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGrantNotFound
			}
			return err
		}
		if grant.Used {
			return ErrGrantAlreadyUsed
		}
		if !actorRole.CanManage() && grant.AccountID != actorID {
			return ErrGrantNotOwned
		}

		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		status, err := booking.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if status == booking.StatusCancelled || status == booking.StatusCompleted {
			return ErrBookingNotOpenForGrant
		}
		if snap.GrantID != nil {
			return ErrGrantAlreadyAttached
		}
		if snap.AccountID == nil || *snap.AccountID != grant.AccountID {
			return ErrGrantNotOwned
		}

		if err := tx.Grants().MarkUsed(ctx, tx.DB(), grantID, bookingID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrGrantAlreadyUsed
			}
			return err
		}
		if err := tx.Bookings().AttachGrant(ctx, tx.DB(), bookingID, grantID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrGrantAlreadyAttached
			}
			return err
		}
		return nil
	})
}

// Delete removes a booking outright, cascading its slot row and horse
// links. Bookings referenced by the point ledger cannot be deleted;
// cancel them instead.
func (uc *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var day time.Time
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		day = snap.Day

		if err := tx.Bookings().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrBookingHasLedger
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, day)
	return nil
}
