package queries

import (
	"context"

	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errs.New("account not found")

type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	// FindByEmail returns the view together with the stored password hash.
	FindByEmail(ctx context.Context, email string) (*AuthorizedAccountView, string, error)
	PointHistory(ctx context.Context, accountID uuid.UUID) (*PointHistoryView, error)
	Grants(ctx context.Context, accountID uuid.UUID) ([]*GrantView, error)
}

type AccountQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	PointHistory(ctx context.Context, accountID uuid.UUID) (*PointHistoryView, error)
	Grants(ctx context.Context, accountID uuid.UUID) ([]*GrantView, error)
}

type accountQueriesImpl struct {
	store AccountReadStore
}

func NewAccountQueries(store AccountReadStore) AccountQueries {
	return &accountQueriesImpl{store: store}
}

func (q *accountQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find account")
	}
	return view, nil
}

func (q *accountQueriesImpl) PointHistory(ctx context.Context, accountID uuid.UUID) (*PointHistoryView, error) {
	history, err := q.store.PointHistory(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to load point history")
	}
	return history, nil
}

func (q *accountQueriesImpl) Grants(ctx context.Context, accountID uuid.UUID) ([]*GrantView, error) {
	grants, err := q.store.Grants(ctx, accountID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reward grants")
	}
	return grants, nil
}
