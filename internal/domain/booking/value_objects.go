package booking

import (
	"regexp"
	"strings"
	"time"

	"stablebook/internal/pkg/errs"
)

var (
	ErrInvalidSlotTime  = errs.New("invalid slot time")
	ErrInvalidContact   = errs.New("invalid contact details")
	ErrInvalidGroupSize = errs.New("invalid group size")
)

// SlotTime is a time-of-day in 24h "HH:MM" form, the unit the calendar
// configures availability in.
type SlotTime struct {
	value string
}

var slotTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func NewSlotTime(value string) (SlotTime, error) {
	value = strings.TrimSpace(value)
	if !slotTimePattern.MatchString(value) {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return SlotTime{value: value}, nil
}

func (t SlotTime) Value() string {
	return t.value
}

// Before orders slot times lexicographically, which is chronological for
// the zero-padded HH:MM form.
func (t SlotTime) Before(other SlotTime) bool {
	return t.value < other.value
}

// Contact holds who to reach about a booking. Name and phone are the
// minimum the stable needs to confirm a ride.
type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Contact{}, ErrInvalidContact
	}
	return Contact{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }

type GroupSize struct {
	value int32
}

const maxGroupSize = 30

func NewGroupSize(value int32) (GroupSize, error) {
	if value < 1 || value > maxGroupSize {
		return GroupSize{}, ErrInvalidGroupSize
	}
	return GroupSize{value: value}, nil
}

func (g GroupSize) Value() int32 {
	return g.value
}

// Day normalizes a date to midnight UTC; bookings and calendar rows key on
// whole dates, not instants.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
