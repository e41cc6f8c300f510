package calendar

import (
	"sort"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/pkg/errs"
)

var (
	ErrBlockReasonRequired = errs.New("block reason required when blocking a day")
	ErrDuplicateSlot       = errs.New("duplicate slot time")
	ErrInvalidCapacity     = errs.New("capacity must be positive")
)

// DayConfig is the per-date availability configuration. One row per date;
// absence of a row means DefaultDayConfig.
type DayConfig struct {
	day         time.Time
	blocked     bool
	blockReason *string
	slots       []booking.SlotTime // ordered ascending
	capacity    *int32             // headcount ceiling, independent of slot count
}

// DefaultDayConfig is the explicit stand-in for a date with no stored row:
// not blocked for display purposes, but with no bookable times either.
func DefaultDayConfig(day time.Time) *DayConfig {
	return &DayConfig{day: booking.Day(day)}
}

func NewDayConfig(day time.Time, blocked bool, blockReason *string, slots []booking.SlotTime, capacity *int32) (*DayConfig, error) {
	if blocked && (blockReason == nil || *blockReason == "") {
		return nil, ErrBlockReasonRequired
	}
	if capacity != nil && *capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Value()]; dup {
			return nil, ErrDuplicateSlot
		}
		seen[s.Value()] = struct{}{}
	}

	ordered := make([]booking.SlotTime, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	return &DayConfig{
		day:         booking.Day(day),
		blocked:     blocked,
		blockReason: blockReason,
		slots:       ordered,
		capacity:    capacity,
	}, nil
}

func (d *DayConfig) Day() time.Time            { return d.day }
func (d *DayConfig) Blocked() bool             { return d.blocked }
func (d *DayConfig) BlockReason() *string      { return d.blockReason }
func (d *DayConfig) Slots() []booking.SlotTime { return d.slots }
func (d *DayConfig) Capacity() *int32          { return d.capacity }

// AvailableTimes returns the configured slots minus the reserved set.
// Blocking always wins: a blocked day has no available times no matter
// what slots are configured.
func (d *DayConfig) AvailableTimes(reserved map[string]struct{}) []booking.SlotTime {
	if d.blocked {
		return nil
	}

	var open []booking.SlotTime
	for _, s := range d.slots {
		if _, taken := reserved[s.Value()]; !taken {
			open = append(open, s)
		}
	}
	return open
}

// HasSlot reports whether t is one of the configured slot times.
func (d *DayConfig) HasSlot(t booking.SlotTime) bool {
	for _, s := range d.slots {
		if s.Value() == t.Value() {
			return true
		}
	}
	return false
}
