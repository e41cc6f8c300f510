//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotValues(slots []booking.SlotTime) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Value())
	}
	return out
}

func TestDayConfig(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.False(t, cfg.Blocked())
		assert.Nil(t, cfg.BlockReason())
		assert.Equal(t, []string{"10:00", "11:00", "14:00"}, slotValues(cfg.Slots()))
	})

	t.Run("slots are sorted ascending", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().
			WithSlots("14:00", "09:00", "11:30").
			BuildDomain()
		require.NoError(t, err)

		if diff := cmp.Diff([]string{"09:00", "11:30", "14:00"}, slotValues(cfg.Slots())); diff != "" {
			t.Errorf("slot order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate slot rejected", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().
			WithSlots("10:00", "10:00").
			BuildDomain()
		require.ErrorIs(t, err, calendar.ErrDuplicateSlot)
		assert.Nil(t, cfg)
	})

	t.Run("blocking requires a reason", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().
			With(func(d *builder.DayConfigBuilder) { d.Blocked = true }).
			BuildDomain()
		require.ErrorIs(t, err, calendar.ErrBlockReasonRequired)
		assert.Nil(t, cfg)

		empty := ""
		cfg, err = builder.NewDayConfigBuilder().
			With(func(d *builder.DayConfigBuilder) {
				d.Blocked = true
				d.BlockReason = &empty
			}).
			BuildDomain()
		require.ErrorIs(t, err, calendar.ErrBlockReasonRequired)
		assert.Nil(t, cfg)
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().WithCapacity(0).BuildDomain()
		require.ErrorIs(t, err, calendar.ErrInvalidCapacity)
		assert.Nil(t, cfg)

		cfg, err = builder.NewDayConfigBuilder().WithCapacity(1).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, cfg.Capacity())
		assert.Equal(t, int32(1), *cfg.Capacity())
	})
}

func TestAvailableTimes(t *testing.T) {
	t.Run("reserved slots are subtracted", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().BuildDomain()
		require.NoError(t, err)

		reserved := map[string]struct{}{"11:00": {}}
		assert.Equal(t, []string{"10:00", "14:00"}, slotValues(cfg.AvailableTimes(reserved)))
	})

	t.Run("fully reserved day has no open times", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().BuildDomain()
		require.NoError(t, err)

		reserved := map[string]struct{}{"10:00": {}, "11:00": {}, "14:00": {}}
		assert.Empty(t, cfg.AvailableTimes(reserved))
	})

	t.Run("blocked day has no open times regardless of slots", func(t *testing.T) {
		cfg, err := builder.NewDayConfigBuilder().AsBlocked("trail maintenance").BuildDomain()
		require.NoError(t, err)

		assert.Empty(t, cfg.AvailableTimes(map[string]struct{}{}))
	})

	t.Run("default config has no open times", func(t *testing.T) {
		cfg := calendar.DefaultDayConfig(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

		assert.False(t, cfg.Blocked())
		assert.Empty(t, cfg.AvailableTimes(map[string]struct{}{}))
	})
}

func TestHasSlot(t *testing.T) {
	cfg, err := builder.NewDayConfigBuilder().BuildDomain()
	require.NoError(t, err)

	inside, err := booking.NewSlotTime("11:00")
	require.NoError(t, err)
	outside, err := booking.NewSlotTime("12:00")
	require.NoError(t, err)

	assert.True(t, cfg.HasSlot(inside))
	assert.False(t, cfg.HasSlot(outside))
}
