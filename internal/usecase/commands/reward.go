package commands

import (
	"context"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/reward"
	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRewardInUse = errs.New("reward has grants and cannot be deleted")

type RewardRequest struct {
	Title           string
	Description     string
	RewardType      string
	PointCost       int64
	DiscountPercent *int32
	FreeService     *string
	Stock           *int32
	Active          bool
}

type CreateRewardResult struct {
	RewardID uuid.UUID
}

type RewardCommands interface {
	CreateReward(ctx context.Context, req RewardRequest) (*CreateRewardResult, error)
	UpdateReward(ctx context.Context, id uuid.UUID, req RewardRequest) error
	DeleteReward(ctx context.Context, id uuid.UUID) error
}

type rewardUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRewardUseCase(uow shared.UnitOfWork) RewardCommands {
	return &rewardUseCaseImpl{uow: uow}
}

func (uc *rewardUseCaseImpl) CreateReward(ctx context.Context, req RewardRequest) (*CreateRewardResult, error) {
	entity, err := buildReward(req)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rewards().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return &CreateRewardResult{RewardID: entity.ID()}, nil
}

// UpdateReward replaces the catalog entry wholesale. Existing grants keep
// pointing at the same reward row and are unaffected by cost changes.
func (uc *rewardUseCaseImpl) UpdateReward(ctx context.Context, id uuid.UUID, req RewardRequest) error {
	validated, err := buildReward(req)
	if err != nil {
		return err
	}

	entity := reward.ReconstructReward(
		id,
		validated.Title(), validated.Description(),
		validated.RewardType(), validated.PointCost(),
		validated.DiscountPercent(), validated.FreeService(),
		validated.Stock(), validated.Active(),
		validated.CreatedAt(), validated.UpdatedAt(),
	)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rewards().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRewardNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *rewardUseCaseImpl) DeleteReward(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rewards().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRewardNotFound
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRewardInUse
			}
			return err
		}
		return nil
	})
}

func buildReward(req RewardRequest) (*reward.Reward, error) {
	rewardType, err := reward.NewType(req.RewardType)
	if err != nil {
		return nil, err
	}

	var freeService *booking.ServiceType
	if req.FreeService != nil {
		service, err := booking.NewServiceType(*req.FreeService)
		if err != nil {
			return nil, err
		}
		freeService = &service
	}

	return reward.NewReward(
		req.Title, req.Description,
		rewardType, req.PointCost,
		req.DiscountPercent, freeService,
		req.Stock, req.Active,
	)
}
