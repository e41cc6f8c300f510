package queries

import (
	"context"
	"log/slog"
	"time"

	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"
)

var ErrDayNotFound = errs.New("calendar day not found")

type CalendarReadStore interface {
	FindDay(ctx context.Context, day time.Time) (*DayConfigView, error)
	FindRange(ctx context.Context, from, to time.Time) ([]*DayConfigView, error)
	ReservedTimes(ctx context.Context, day time.Time) ([]string, error)
}

// AvailabilityCache is the optional redis layer in front of availability
// reads. Implementations fail open: a cache error is treated as a miss.
type AvailabilityCache interface {
	Get(ctx context.Context, day time.Time) (*DayAvailabilityView, bool)
	Set(ctx context.Context, view *DayAvailabilityView)
	Invalidate(ctx context.Context, day time.Time)
}

type AvailabilityQueries interface {
	AvailableTimes(ctx context.Context, day time.Time) (*DayAvailabilityView, error)
	DayConfig(ctx context.Context, day time.Time) (*DayConfigView, error)
	DayRange(ctx context.Context, from, to time.Time) ([]*DayConfigView, error)
}

type availabilityQueriesImpl struct {
	store CalendarReadStore
	cache AvailabilityCache
}

func NewAvailabilityQueries(store CalendarReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache}
}

// AvailableTimes computes configured slots minus reserved times. A blocked
// day is always empty; so is a day with no stored config.
func (q *availabilityQueriesImpl) AvailableTimes(ctx context.Context, day time.Time) (*DayAvailabilityView, error) {
	if cached, ok := q.cache.Get(ctx, day); ok {
		return cached, nil
	}

	cfg, err := q.store.FindDay(ctx, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			view := &DayAvailabilityView{Day: day, AvailableTimes: []string{}}
			q.cache.Set(ctx, view)
			return view, nil
		}
		return nil, errs.Wrap(err, "failed to load day config")
	}

	view := &DayAvailabilityView{Day: cfg.Day, Blocked: cfg.Blocked, AvailableTimes: []string{}}
	if cfg.Blocked {
		q.cache.Set(ctx, view)
		return view, nil
	}

	reserved, err := q.store.ReservedTimes(ctx, day)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reserved times")
	}

	taken := make(map[string]struct{}, len(reserved))
	for _, t := range reserved {
		taken[t] = struct{}{}
	}
	for _, s := range cfg.Slots {
		if _, ok := taken[s]; !ok {
			view.AvailableTimes = append(view.AvailableTimes, s)
		}
	}

	q.cache.Set(ctx, view)
	return view, nil
}

func (q *availabilityQueriesImpl) DayConfig(ctx context.Context, day time.Time) (*DayConfigView, error) {
	cfg, err := q.store.FindDay(ctx, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Missing row: not blocked for display, nothing bookable.
			return &DayConfigView{Day: day, Slots: []string{}, Stored: false}, nil
		}
		return nil, errs.Wrap(err, "failed to load day config")
	}
	return cfg, nil
}

func (q *availabilityQueriesImpl) DayRange(ctx context.Context, from, to time.Time) ([]*DayConfigView, error) {
	if to.Before(from) {
		slog.Warn("day range query with inverted bounds", "from", from, "to", to)
		return []*DayConfigView{}, nil
	}
	views, err := q.store.FindRange(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load day range")
	}
	return views, nil
}
