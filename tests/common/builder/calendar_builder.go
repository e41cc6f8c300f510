//go:build unit || e2e

package builder

import (
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
)

type DayConfigBuilder struct {
	Day         time.Time
	Blocked     bool
	BlockReason *string
	Slots       []string
	Capacity    *int32
}

func NewDayConfigBuilder() *DayConfigBuilder {
	return &DayConfigBuilder{
		Day:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Slots: []string{"10:00", "11:00", "14:00"},
	}
}

func (d *DayConfigBuilder) With(mutate func(*DayConfigBuilder)) *DayConfigBuilder {
	mutate(d)
	return d
}

func (d *DayConfigBuilder) BuildDomain() (*calendar.DayConfig, error) {
	slots := make([]booking.SlotTime, 0, len(d.Slots))
	for _, s := range d.Slots {
		slot, err := booking.NewSlotTime(s)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return calendar.NewDayConfig(d.Day, d.Blocked, d.BlockReason, slots, d.Capacity)
}

func (d *DayConfigBuilder) AsBlocked(reason string) *DayConfigBuilder {
	d.Blocked = true
	d.BlockReason = &reason
	return d
}

func (d *DayConfigBuilder) WithSlots(slots ...string) *DayConfigBuilder {
	d.Slots = slots
	return d
}

func (d *DayConfigBuilder) WithCapacity(capacity int32) *DayConfigBuilder {
	d.Capacity = &capacity
	return d
}
