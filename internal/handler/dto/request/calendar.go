package request

import (
	"time"

	"stablebook/internal/usecase/commands"
)

type UpsertDayConfigRequest struct {
	Day         time.Time `json:"day" binding:"required"`
	Blocked     bool      `json:"blocked"`
	BlockReason *string   `json:"block_reason,omitempty"`
	Slots       []string  `json:"slots"`
	Capacity    *int32    `json:"capacity,omitempty"`
}

func (r *UpsertDayConfigRequest) ToCommand() commands.UpsertDayConfigRequest {
	return commands.UpsertDayConfigRequest{
		Day:         r.Day,
		Blocked:     r.Blocked,
		BlockReason: r.BlockReason,
		Slots:       r.Slots,
		Capacity:    r.Capacity,
	}
}
