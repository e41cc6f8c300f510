package response

import (
	"time"

	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingHorseResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID           uuid.UUID               `json:"id"`
	Service      string                  `json:"service"`
	Day          time.Time               `json:"day"`
	SlotTime     string                  `json:"slot_time"`
	GroupSize    int32                   `json:"group_size"`
	ContactName  string                  `json:"contact_name"`
	ContactPhone string                  `json:"contact_phone"`
	ContactEmail string                  `json:"contact_email"`
	Experience   string                  `json:"experience"`
	Status       string                  `json:"status"`
	AccountID    *uuid.UUID              `json:"account_id,omitempty"`
	GrantID      *uuid.UUID              `json:"grant_id,omitempty"`
	Notes        string                  `json:"notes"`
	Horses       []*BookingHorseResponse `json:"horses"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type BookingListResponse struct {
	ID        uuid.UUID `json:"id"`
	Service   string    `json:"service"`
	Day       time.Time `json:"day"`
	SlotTime  string    `json:"slot_time"`
	GroupSize int32     `json:"group_size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotUnavailableResponse is the detail payload for a rejected
// submission, listing the times still open on the requested day.
type SlotUnavailableResponse struct {
	OpenTimes []string `json:"open_times"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		resps = append(resps, &resp)
	}
	return resps
}
