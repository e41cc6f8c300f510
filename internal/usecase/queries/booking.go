package queries

import (
	"context"
	"time"

	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*BookingListItem, error)
	FindByDayRange(ctx context.Context, from, to time.Time) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*BookingListItem, error)
	ListByDayRange(ctx context.Context, from, to time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list account bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByDayRange(ctx context.Context, from, to time.Time) ([]*BookingListItem, error) {
	items, err := q.store.FindByDayRange(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings by day")
	}
	return items, nil
}
