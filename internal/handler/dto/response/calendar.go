package response

import (
	"time"

	"stablebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DayConfigResponse struct {
	Day         time.Time `json:"day"`
	Blocked     bool      `json:"blocked"`
	BlockReason *string   `json:"block_reason,omitempty"`
	Slots       []string  `json:"slots"`
	Capacity    *int32    `json:"capacity,omitempty"`
	Stored      bool      `json:"stored"`
}

type DayAvailabilityResponse struct {
	Day            time.Time `json:"day"`
	Blocked        bool      `json:"blocked"`
	AvailableTimes []string  `json:"available_times"`
}

func FromDayConfigView(view *queries.DayConfigView) *DayConfigResponse {
	var resp DayConfigResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDayConfigViews(views []*queries.DayConfigView) []*DayConfigResponse {
	resps := make([]*DayConfigResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromDayConfigView(view))
	}
	return resps
}

func FromDayAvailabilityView(view *queries.DayAvailabilityView) *DayAvailabilityResponse {
	var resp DayAvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
