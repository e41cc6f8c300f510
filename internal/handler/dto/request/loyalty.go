package request

import (
	"github.com/google/uuid"
)

type RedeemRewardRequest struct {
	RewardID uuid.UUID `json:"reward_id" binding:"required"`
}

type AdjustPointsRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type AwardCompletionRequest struct {
	Points int64 `json:"points" binding:"required,min=1"`
}
