package queries

import (
	"context"

	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRewardNotFound = errs.New("reward not found")

type RewardReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RewardView, error)
	FindActive(ctx context.Context) ([]*RewardView, error)
	FindAllWithCounts(ctx context.Context) ([]*RewardAdminView, error)
}

type HorseReadStore interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*HorseView, error)
}

type RewardQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RewardView, error)
	ListActive(ctx context.Context) ([]*RewardView, error)
	ListAdmin(ctx context.Context) ([]*RewardAdminView, error)
}

type rewardQueriesImpl struct {
	store RewardReadStore
}

func NewRewardQueries(store RewardReadStore) RewardQueries {
	return &rewardQueriesImpl{store: store}
}

func (q *rewardQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RewardView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, errs.Wrap(err, "failed to find reward")
	}
	return view, nil
}

func (q *rewardQueriesImpl) ListActive(ctx context.Context) ([]*RewardView, error) {
	views, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active rewards")
	}
	return views, nil
}

func (q *rewardQueriesImpl) ListAdmin(ctx context.Context) ([]*RewardAdminView, error) {
	views, err := q.store.FindAllWithCounts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rewards")
	}
	return views, nil
}

type HorseQueries interface {
	List(ctx context.Context, activeOnly bool) ([]*HorseView, error)
}

type horseQueriesImpl struct {
	store HorseReadStore
}

func NewHorseQueries(store HorseReadStore) HorseQueries {
	return &horseQueriesImpl{store: store}
}

func (q *horseQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*HorseView, error) {
	views, err := q.store.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list horses")
	}
	return views, nil
}
