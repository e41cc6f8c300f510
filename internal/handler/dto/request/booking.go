package request

import (
	"time"

	"stablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	Service      string      `json:"service" binding:"required"`
	Day          time.Time   `json:"day" binding:"required"`
	SlotTime     string      `json:"slot_time" binding:"required"`
	GroupSize    int32       `json:"group_size" binding:"required,min=1"`
	ContactName  string      `json:"contact_name" binding:"required"`
	ContactPhone string      `json:"contact_phone" binding:"required"`
	ContactEmail string      `json:"contact_email,omitempty"`
	Experience   string      `json:"experience" binding:"required"`
	HorseIDs     []uuid.UUID `json:"horse_ids,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	// Only honored for staff callers; rider submissions start pending.
	Confirmed bool `json:"confirmed,omitempty"`
}

func (r *SubmitBookingRequest) ToCommand(allowConfirmed bool) commands.SubmitBookingRequest {
	return commands.SubmitBookingRequest{
		Service:      r.Service,
		Day:          r.Day,
		SlotTime:     r.SlotTime,
		GroupSize:    r.GroupSize,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Experience:   r.Experience,
		HorseIDs:     r.HorseIDs,
		Notes:        r.Notes,
		Confirmed:    r.Confirmed && allowConfirmed,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplyGrantRequest struct {
	GrantID uuid.UUID `json:"grant_id" binding:"required"`
}
