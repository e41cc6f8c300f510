package queries

import (
	"time"

	"github.com/google/uuid"
)

// View structs returned by the read side. Flat, JSON-friendly, assembled
// by the read stores from joined rows.

type AccountView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Points       int64      `json:"points"`
	ReferralCode string     `json:"referral_code"`
	ReferredBy   *uuid.UUID `json:"referred_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AuthorizedAccountView carries what the login flow needs; the password
// hash travels next to it and never leaves the usecase layer.
type AuthorizedAccountView struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type PointEntryView struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int64      `json:"amount"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	RewardID    *uuid.UUID `json:"reward_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PointHistoryView struct {
	Balance int64             `json:"balance"`
	Entries []*PointEntryView `json:"entries"`
}

type DayConfigView struct {
	Day         time.Time `json:"day"`
	Blocked     bool      `json:"blocked"`
	BlockReason *string   `json:"block_reason,omitempty"`
	Slots       []string  `json:"slots"`
	Capacity    *int32    `json:"capacity,omitempty"`
	Stored      bool      `json:"stored"` // false when this is the implicit default
}

type DayAvailabilityView struct {
	Day            time.Time `json:"day"`
	Blocked        bool      `json:"blocked"`
	AvailableTimes []string  `json:"available_times"`
}

type BookingHorseView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID           uuid.UUID           `json:"id"`
	Service      string              `json:"service"`
	Day          time.Time           `json:"day"`
	SlotTime     string              `json:"slot_time"`
	GroupSize    int32               `json:"group_size"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email"`
	Experience   string              `json:"experience"`
	Status       string              `json:"status"`
	AccountID    *uuid.UUID          `json:"account_id,omitempty"`
	GrantID      *uuid.UUID          `json:"grant_id,omitempty"`
	Notes        string              `json:"notes"`
	Horses       []*BookingHorseView `json:"horses"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	Service   string    `json:"service"`
	Day       time.Time `json:"day"`
	SlotTime  string    `json:"slot_time"`
	GroupSize int32     `json:"group_size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RewardView struct {
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

type RewardAdminView struct {
	RewardView
	RedemptionCount int64     `json:"redemption_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type GrantView struct {
	ID            uuid.UUID  `json:"id"`
	RewardID      uuid.UUID  `json:"reward_id"`
	RewardTitle   string     `json:"reward_title"`
	Used          bool       `json:"used"`
	UsedBookingID *uuid.UUID `json:"used_booking_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type HorseView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Breed    string    `json:"breed"`
	MinLevel string    `json:"min_level"`
	Active   bool      `json:"active"`
}
