package response

import (
	"time"

	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccountResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Points       int64     `json:"points"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type PointEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int64      `json:"amount"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	RewardID    *uuid.UUID `json:"reward_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PointHistoryResponse struct {
	Balance int64                 `json:"balance"`
	Entries []*PointEntryResponse `json:"entries"`
}

type GrantResponse struct {
	ID            uuid.UUID  `json:"id"`
	RewardID      uuid.UUID  `json:"reward_id"`
	RewardTitle   string     `json:"reward_title"`
	Used          bool       `json:"used"`
	UsedBookingID *uuid.UUID `json:"used_booking_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

func FromAccountView(view *queries.AccountView) *AccountResponse {
	var resp AccountResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPointHistoryView(view *queries.PointHistoryView) *PointHistoryResponse {
	var resp PointHistoryResponse
	_ = copier.Copy(&resp, view)
	if resp.Entries == nil {
		resp.Entries = []*PointEntryResponse{}
	}
	return &resp
}

func FromGrantViews(views []*queries.GrantView) []*GrantResponse {
	resps := make([]*GrantResponse, 0, len(views))
	for _, view := range views {
		var resp GrantResponse
		_ = copier.Copy(&resp, view)
		resps = append(resps, &resp)
	}
	return resps
}
