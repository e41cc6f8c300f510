package commands

import (
	"context"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/internal/usecase/queries"
	"stablebook/internal/usecase/shared"
)

type UpsertDayConfigRequest struct {
	Day         time.Time
	Blocked     bool
	BlockReason *string
	Slots       []string
	Capacity    *int32
}

type CalendarCommands interface {
	UpsertDayConfig(ctx context.Context, req UpsertDayConfigRequest) error
}

type calendarUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.AvailabilityCache
}

func NewCalendarUseCase(uow shared.UnitOfWork, cache queries.AvailabilityCache) CalendarCommands {
	return &calendarUseCaseImpl{uow: uow, cache: cache}
}

// UpsertDayConfig replaces the whole configuration for a date. Existing
// bookings are untouched; blocking a day hides its slots from
// availability but does not cancel anything.
func (uc *calendarUseCaseImpl) UpsertDayConfig(ctx context.Context, req UpsertDayConfigRequest) error {
	slots := make([]booking.SlotTime, 0, len(req.Slots))
	for _, raw := range req.Slots {
		slot, err := booking.NewSlotTime(raw)
		if err != nil {
			return err
		}
		slots = append(slots, slot)
	}

	cfg, err := calendar.NewDayConfig(req.Day, req.Blocked, req.BlockReason, slots, req.Capacity)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Calendar().Upsert(ctx, tx.DB(), cfg)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, cfg.Day())
	return nil
}
