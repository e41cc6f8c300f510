package request

import (
	"stablebook/internal/usecase/commands"
)

type RewardRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description,omitempty"`
	RewardType      string  `json:"reward_type" binding:"required"`
	PointCost       int64   `json:"point_cost" binding:"required,min=1"`
	DiscountPercent *int32  `json:"discount_percent,omitempty"`
	FreeService     *string `json:"free_service,omitempty"`
	Stock           *int32  `json:"stock,omitempty"`
	Active          bool    `json:"active"`
}

func (r *RewardRequest) ToCommand() commands.RewardRequest {
	return commands.RewardRequest{
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

type HorseRequest struct {
	Name     string `json:"name" binding:"required"`
	Breed    string `json:"breed,omitempty"`
	MinLevel string `json:"min_level" binding:"required"`
	Active   bool   `json:"active"`
}

func (r *HorseRequest) ToCommand() commands.HorseRequest {
	return commands.HorseRequest{
		Name:     r.Name,
		Breed:    r.Breed,
		MinLevel: r.MinLevel,
		Active:   r.Active,
	}
}
