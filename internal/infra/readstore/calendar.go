package readstore

import (
	"context"
	"time"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/calendar"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/pkg/pgconv"
	"stablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarReadStore struct {
	db db.DBTX
}

func NewCalendarReadStore(dbtx db.DBTX) *CalendarReadStore {
	return &CalendarReadStore{db: dbtx}
}

func (r *CalendarReadStore) FindDay(ctx context.Context, day time.Time) (*queries.DayConfigView, error) {
	const query = `
		SELECT day, blocked, block_reason, slots, capacity
		FROM calendar_days
		WHERE day = $1
	`

	view, err := scanDayConfigView(r.db.QueryRow(ctx, query, pgconv.DateToPgtype(booking.Day(day))))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find calendar day", err)
	}

	return view, nil
}

func (r *CalendarReadStore) FindRange(ctx context.Context, from, to time.Time) ([]*queries.DayConfigView, error) {
	const query = `
		SELECT day, blocked, block_reason, slots, capacity
		FROM calendar_days
		WHERE day >= $1 AND day <= $2
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, pgconv.DateToPgtype(booking.Day(from)), pgconv.DateToPgtype(booking.Day(to)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find calendar range", err)
	}
	defer rows.Close()

	views := []*queries.DayConfigView{}
	for rows.Next() {
		view, err := scanDayConfigView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar day", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate calendar range", err)
	}

	return views, nil
}

func (r *CalendarReadStore) ReservedTimes(ctx context.Context, day time.Time) ([]string, error) {
	const query = `
		SELECT slot_time
		FROM booked_slots
		WHERE day = $1
		ORDER BY slot_time
	`

	rows, err := r.db.Query(ctx, query, pgconv.DateToPgtype(booking.Day(day)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reserved times", err)
	}
	defer rows.Close()

	times := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserved time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reserved times", err)
	}

	return times, nil
}

// DayConfigDomain loads the stored config as a domain object for the
// command side. A missing row surfaces as KindNotFound; the caller
// decides whether the default config applies.
func (r *CalendarReadStore) DayConfigDomain(ctx context.Context, day time.Time) (*calendar.DayConfig, error) {
	view, err := r.FindDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return dayConfigFromView(view)
}

// DayConfigDomainForUpdate additionally locks the calendar row. The
// headcount ceiling spans every slot of the day, so capacity-checked
// admissions must serialize here; the slot unique key only arbitrates
// same-slot races.
func (r *CalendarReadStore) DayConfigDomainForUpdate(ctx context.Context, day time.Time) (*calendar.DayConfig, error) {
	const query = `
		SELECT day, blocked, block_reason, slots, capacity
		FROM calendar_days
		WHERE day = $1
		FOR UPDATE
	`

	view, err := scanDayConfigView(r.db.QueryRow(ctx, query, pgconv.DateToPgtype(booking.Day(day))))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock calendar day", err)
	}
	return dayConfigFromView(view)
}

func dayConfigFromView(view *queries.DayConfigView) (*calendar.DayConfig, error) {
	slots := make([]booking.SlotTime, 0, len(view.Slots))
	for _, raw := range view.Slots {
		slot, err := booking.NewSlotTime(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("stored slot time is malformed", err)
		}
		slots = append(slots, slot)
	}

	cfg, err := calendar.NewDayConfig(view.Day, view.Blocked, view.BlockReason, slots, view.Capacity)
	if err != nil {
		return nil, infra.WrapRepoErr("stored day config is invalid", err)
	}
	return cfg, nil
}

// GroupSizeSum totals headcount across non-cancelled bookings for the day.
func (r *CalendarReadStore) GroupSizeSum(ctx context.Context, day time.Time) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(group_size), 0)
		FROM bookings
		WHERE day = $1 AND status <> 'CANCELLED'
	`

	var sum int64
	if err := r.db.QueryRow(ctx, query, pgconv.DateToPgtype(booking.Day(day))).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum group sizes", err)
	}

	return sum, nil
}

func scanDayConfigView(row interface{ Scan(dest ...any) error }) (*queries.DayConfigView, error) {
	var (
		view        queries.DayConfigView
		day         pgtype.Date
		blockReason pgtype.Text
		capacity    pgtype.Int4
	)
	if err := row.Scan(&day, &view.Blocked, &blockReason, &view.Slots, &capacity); err != nil {
		return nil, err
	}

	view.Day = pgconv.DateFromPgtype(day)
	view.BlockReason = pgconv.StringPtrFromPgtype(blockReason)
	view.Capacity = pgconv.Int32PtrFromPgtype(capacity)
	view.Stored = true
	if view.Slots == nil {
		view.Slots = []string{}
	}
	return &view, nil
}
