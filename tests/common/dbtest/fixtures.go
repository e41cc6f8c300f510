//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stablebook/internal/pkg/refcode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every fixture account.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

// testPasswordHash hashes at MinCost to keep suite setup fast.
func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = string(hashed)
	})
	return passwordHash
}

func CreateTestAccount(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	code, err := refcode.New()
	require.NoError(t, err)

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, name, role, referral_code)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING`,
		accountID, email, testPasswordHash(t), "Fixture Rider", role, code)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

// AddPoints credits an account through the ledger, keeping the running
// balance and the transaction log consistent the way the application does.
func AddPoints(t *testing.T, db DBLike, accountID uuid.UUID, amount int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO point_transactions (id, account_id, amount, kind, description)
		 VALUES ($1, $2, $3, 'ADMIN_ADJUSTMENT', 'test fixture')`,
		uuid.New(), accountID, amount)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"UPDATE accounts SET points = points + $1 WHERE id = $2", amount, accountID)
	require.NoError(t, err)
}

func CreateTestDay(t *testing.T, db DBLike, day time.Time, slots []string, capacity *int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO calendar_days (day, slots, capacity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (day) DO UPDATE SET slots = $2, capacity = $3, blocked = false, block_reason = NULL`,
		day, slots, capacity)
	require.NoError(t, err)
}

func BlockTestDay(t *testing.T, db DBLike, day time.Time, reason string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO calendar_days (day, blocked, block_reason)
		 VALUES ($1, true, $2)
		 ON CONFLICT (day) DO UPDATE SET blocked = true, block_reason = $2`,
		day, reason)
	require.NoError(t, err)
}

func CreateTestHorse(t *testing.T, db DBLike, name, minLevel string) uuid.UUID {
	t.Helper()

	horseID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO horses (id, name, breed, min_level) VALUES ($1, $2, 'Icelandic', $3)",
		horseID, name, minLevel)
	require.NoError(t, err)

	return horseID
}

func CreateTestReward(t *testing.T, db DBLike, title string, pointCost int64, stock *int32) uuid.UUID {
	t.Helper()

	rewardID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO rewards (id, title, reward_type, point_cost, discount_percent, stock)
		 VALUES ($1, $2, 'DISCOUNT', $3, 10, $4)`,
		rewardID, title, pointCost, stock)
	require.NoError(t, err)

	return rewardID
}

// SeedReferenceData inserts the roster rows shared by every test database.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO horses (id, name, breed, min_level) VALUES
		    ('11111111-1111-1111-1111-111111111111', 'Stjarna', 'Icelandic', 'BEGINNER'),
		    ('22222222-2222-2222-2222-222222222222', 'Blesi', 'Icelandic', 'INTERMEDIATE')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
