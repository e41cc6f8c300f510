package response

import (
	"time"

	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RewardResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	RewardType      string    `json:"reward_type"`
	PointCost       int64     `json:"point_cost"`
	DiscountPercent *int32    `json:"discount_percent,omitempty"`
	FreeService     *string   `json:"free_service,omitempty"`
	Stock           *int32    `json:"stock,omitempty"`
	Active          bool      `json:"active"`
}

type RewardAdminResponse struct {
	RewardResponse
	RedemptionCount int64     `json:"redemption_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RedeemResponse struct {
	GrantID    uuid.UUID `json:"grant_id"`
	NewBalance int64     `json:"new_balance"`
}

type HorseResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Breed    string    `json:"breed"`
	MinLevel string    `json:"min_level"`
	Active   bool      `json:"active"`
}

func FromRewardView(view *queries.RewardView) *RewardResponse {
	var resp RewardResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRewardViews(views []*queries.RewardView) []*RewardResponse {
	resps := make([]*RewardResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromRewardView(view))
	}
	return resps
}

func FromRewardAdminViews(views []*queries.RewardAdminView) []*RewardAdminResponse {
	resps := make([]*RewardAdminResponse, 0, len(views))
	for _, view := range views {
		var resp RewardAdminResponse
		_ = copier.Copy(&resp, view)
		resps = append(resps, &resp)
	}
	return resps
}

func FromHorseViews(views []*queries.HorseView) []*HorseResponse {
	resps := make([]*HorseResponse, 0, len(views))
	for _, view := range views {
		var resp HorseResponse
		_ = copier.Copy(&resp, view)
		resps = append(resps, &resp)
	}
	return resps
}
