package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stablebook/internal/domain/calendar"
	"stablebook/internal/infra/db"
	"stablebook/internal/infra/readstore"
	"stablebook/internal/infra/repository"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	accountRepo  shared.AccountRepository
	bookingRepo  shared.BookingRepository
	calendarRepo shared.CalendarRepository
	ledgerRepo   shared.LedgerRepository
	rewardRepo   shared.RewardRepository
	grantRepo    shared.GrantRepository
	horseRepo    shared.HorseRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository()
	}
	return t.accountRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Calendar() shared.CalendarRepository {
	if t.calendarRepo == nil {
		t.calendarRepo = repository.NewCalendarRepository()
	}
	return t.calendarRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository()
	}
	return t.ledgerRepo
}

func (t *pgTx) Rewards() shared.RewardRepository {
	if t.rewardRepo == nil {
		t.rewardRepo = repository.NewRewardRepository()
	}
	return t.rewardRepo
}

func (t *pgTx) Grants() shared.GrantRepository {
	if t.grantRepo == nil {
		t.grantRepo = repository.NewGrantRepository()
	}
	return t.grantRepo
}

func (t *pgTx) Horses() shared.HorseRepository {
	if t.horseRepo == nil {
		t.horseRepo = repository.NewHorseRepository()
	}
	return t.horseRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	accountStore  *readstore.AccountReadStore
	calendarStore *readstore.CalendarReadStore
	bookingStore  *readstore.BookingReadStore
	rewardStore   *readstore.RewardReadStore
	horseStore    *readstore.HorseReadStore
}

func (r *commandReads) accounts() *readstore.AccountReadStore {
	if r.accountStore == nil {
		r.accountStore = readstore.NewAccountReadStore(r.dbtx)
	}
	return r.accountStore
}

func (r *commandReads) calendar() *readstore.CalendarReadStore {
	if r.calendarStore == nil {
		r.calendarStore = readstore.NewCalendarReadStore(r.dbtx)
	}
	return r.calendarStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) rewards() *readstore.RewardReadStore {
	if r.rewardStore == nil {
		r.rewardStore = readstore.NewRewardReadStore(r.dbtx)
	}
	return r.rewardStore
}

func (r *commandReads) horses() *readstore.HorseReadStore {
	if r.horseStore == nil {
		r.horseStore = readstore.NewHorseReadStore(r.dbtx)
	}
	return r.horseStore
}

func (r *commandReads) AccountByReferralCode(ctx context.Context, code string) (*shared.AccountSnapshot, error) {
	return r.accounts().SnapshotByReferralCode(ctx, code)
}

func (r *commandReads) AccountPointsForUpdate(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.accounts().PointsForUpdate(ctx, id)
}

func (r *commandReads) DayConfig(ctx context.Context, day time.Time) (*calendar.DayConfig, error) {
	return r.calendar().DayConfigDomain(ctx, day)
}

func (r *commandReads) DayConfigForUpdate(ctx context.Context, day time.Time) (*calendar.DayConfig, error) {
	return r.calendar().DayConfigDomainForUpdate(ctx, day)
}

func (r *commandReads) ReservedTimes(ctx context.Context, day time.Time) (map[string]struct{}, error) {
	times, err := r.calendar().ReservedTimes(ctx, day)
	if err != nil {
		return nil, err
	}

	reserved := make(map[string]struct{}, len(times))
	for _, t := range times {
		reserved[t] = struct{}{}
	}
	return reserved, nil
}

func (r *commandReads) GroupSizeSum(ctx context.Context, day time.Time) (int64, error) {
	return r.calendar().GroupSizeSum(ctx, day)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookings().Snapshot(ctx, id)
}

func (r *commandReads) RewardForUpdate(ctx context.Context, id uuid.UUID) (*shared.RewardSnapshot, error) {
	return r.rewards().ForUpdate(ctx, id)
}

func (r *commandReads) GrantByID(ctx context.Context, id uuid.UUID) (*shared.GrantSnapshot, error) {
	return r.rewards().GrantSnapshot(ctx, id)
}

func (r *commandReads) ActiveHorseCount(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.horses().ActiveCount(ctx, ids)
}
