//go:build unit || e2e

package builder

import (
	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/reward"
	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardBuilder struct {
	Title           string
	Description     string
	RewardType      string
	PointCost       int64
	DiscountPercent *int32
	FreeService     *string
	Stock           *int32
	Active          bool
}

func NewRewardBuilder() *RewardBuilder {
	percent := int32(10)
	return &RewardBuilder{
		Title:           "10% off next lesson",
		Description:     "Single-use discount voucher",
		RewardType:      "DISCOUNT",
		PointCost:       500,
		DiscountPercent: &percent,
		Active:          true,
	}
}

func (r *RewardBuilder) With(mutate func(*RewardBuilder)) *RewardBuilder {
	mutate(r)
	return r
}

func (r *RewardBuilder) BuildDomain() (*reward.Reward, error) {
	rewardType, err := reward.NewType(r.RewardType)
	if err != nil {
		return nil, err
	}

	var freeService *booking.ServiceType
	if r.FreeService != nil {
		svc, err := booking.NewServiceType(*r.FreeService)
		if err != nil {
			return nil, err
		}
		freeService = &svc
	}

	return reward.NewReward(r.Title, r.Description, rewardType, r.PointCost, r.DiscountPercent, freeService, r.Stock, r.Active)
}

func (r *RewardBuilder) BuildView() *queries.RewardView {
	return &queries.RewardView{
		ID:              uuid.New(),
		Title:           r.Title,
		Description:     r.Description,
		RewardType:      r.RewardType,
		PointCost:       r.PointCost,
		DiscountPercent: r.DiscountPercent,
		FreeService:     r.FreeService,
		Stock:           r.Stock,
		Active:          r.Active,
	}
}

func (r *RewardBuilder) AsFreeService(service string) *RewardBuilder {
	r.RewardType = "FREE_SERVICE"
	r.DiscountPercent = nil
	r.FreeService = &service
	return r
}

func (r *RewardBuilder) WithPointCost(cost int64) *RewardBuilder {
	r.PointCost = cost
	return r
}

func (r *RewardBuilder) WithDiscountPercent(percent int32) *RewardBuilder {
	r.DiscountPercent = &percent
	return r
}

func (r *RewardBuilder) WithStock(stock int32) *RewardBuilder {
	r.Stock = &stock
	return r
}

func (r *RewardBuilder) AsInactive() *RewardBuilder {
	r.Active = false
	return r
}
