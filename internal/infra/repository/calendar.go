package repository

import (
	"context"

	"stablebook/internal/domain/calendar"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"
)

type CalendarRepository struct{}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{}
}

// Upsert is a full replace: one row per date, created on first write.
func (r *CalendarRepository) Upsert(ctx context.Context, dbtx db.DBTX, cfg *calendar.DayConfig) error {
	const query = `
		INSERT INTO calendar_days (day, blocked, block_reason, slots, capacity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (day) DO UPDATE SET
			blocked      = EXCLUDED.blocked,
			block_reason = EXCLUDED.block_reason,
			slots        = EXCLUDED.slots,
			capacity     = EXCLUDED.capacity,
			updated_at   = now()
	`

	slots := make([]string, len(cfg.Slots()))
	for i, s := range cfg.Slots() {
		slots[i] = s.Value()
	}

	_, err := dbtx.Exec(ctx, query,
		pgconv.DateToPgtype(cfg.Day()),
		cfg.Blocked(),
		pgconv.StringPtrToPgtype(cfg.BlockReason()),
		slots,
		pgconv.Int32PtrToPgtype(cfg.Capacity()),
	)
	if err != nil {
		return wrapWriteErr("failed to upsert day config", err)
	}

	return nil
}
