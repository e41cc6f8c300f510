//go:build e2e

package loyalty_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"stablebook/internal/domain/account"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/pkg/config"
	"stablebook/tests/common/authtest"
	"stablebook/tests/common/builder"
	"stablebook/tests/common/dbtest"
	"stablebook/tests/common/httptest"
	"stablebook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	redeemURL   = "/api/loyalty/redeem"
	grantsURL   = "/api/accounts/me/grants"
	bookingsURL = "/api/bookings"
)

type LoyaltySuite struct {
	e2e.SharedSuite
}

func TestLoyaltySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LoyaltySuite))
}

func (s *LoyaltySuite) redeem(token string, rewardID uuid.UUID) *resdto.RedeemResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL,
		map[string]any{"reward_id": rewardID.String()}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var resp resdto.RedeemResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &resp))
	return &resp
}

func (s *LoyaltySuite) TestRedeem() {
	s.Run("Normal case: redeeming debits the balance and issues a grant", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "spender@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 600)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Lesson Discount", 500, nil)
		token := authtest.LoginUser(t, s.Router, "spender@example.com", dbtest.TestPassword)

		resp := s.redeem(token, rewardID)
		require.EqualValues(t, 100, resp.NewBalance)
		require.NotEqual(t, uuid.Nil, resp.GrantID)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, grantsURL, nil, token)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var grants []*resdto.GrantResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &grants))
		require.Len(t, grants, 1)
		require.Equal(t, resp.GrantID, grants[0].ID)
		require.False(t, grants[0].Used)
	})

	s.Run("Error case: insufficient points returns 422", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "broke@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 100)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Lesson Discount", 500, nil)
		token := authtest.LoginUser(t, s.Router, "broke@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"reward_id": rewardID.String()}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: inactive reward returns 409", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "spender@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 600)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Retired Reward", 500, nil)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE rewards SET active = false WHERE id = $1", rewardID)
		require.NoError(t, err)

		token := authtest.LoginUser(t, s.Router, "spender@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"reward_id": rewardID.String()}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: exhausted stock returns 409", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "spender@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 600)
		stock := int32(0)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Sold Out", 500, &stock)
		token := authtest.LoginUser(t, s.Router, "spender@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			map[string]any{"reward_id": rewardID.String()}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// The stock invariant: a reward with one unit left can only be redeemed
// once, no matter how many riders race for it.
func (s *LoyaltySuite) TestRedeemRace() {
	s.Run("Concurrency: single unit of stock goes to exactly one redeemer", func() {
		t := s.T()

		stock := int32(1)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Last One", 100, &stock)

		const racers = 4
		tokens := make([]string, racers)
		for i := range racers {
			email := "racer" + string(rune('a'+i)) + "@example.com"
			accountID := dbtest.CreateTestAccount(t, s.DB, email, string(account.RoleUser))
			dbtest.AddPoints(t, s.DB, accountID, 200)
			tokens[i] = authtest.LoginUser(t, s.Router, email, dbtest.TestPassword)
		}

		codes := make(chan int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
					map[string]any{"reward_id": rewardID.String()}, token)
				codes <- w.Code
			}(tokens[i])
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one redemption should win the last unit")
		require.Equal(t, racers-1, conflicted)
	})
}

func (s *LoyaltySuite) TestApplyGrantToBooking() {
	s.Run("Normal case: a fresh grant attaches once and only once", func() {
		t := s.T()

		day := time.Now().UTC().AddDate(0, 0, 14)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		dbtest.CreateTestDay(t, s.DB, day, []string{"10:00", "11:00"}, nil)

		accountID := dbtest.CreateTestAccount(t, s.DB, "spender@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 600)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Lesson Discount", 500, nil)
		token := authtest.LoginUser(t, s.Router, "spender@example.com", dbtest.TestPassword)

		grant := s.redeem(token, rewardID)

		reqBody := builder.NewBookingBuilder().WithDay(day).BuildDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &created))
		grantURL := bookingsURL + "/" + created.ID.String() + "/grant"

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, grantURL,
			map[string]any{"grant_id": grant.GrantID.String()}, token)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())

		// Second attach of the same grant must fail; it is spent.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, grantURL,
			map[string]any{"grant_id": grant.GrantID.String()}, token)
		require.Equal(t, http.StatusConflict, rw.Code, rw.Body.String())
	})

	s.Run("Error case: someone else's grant is rejected", func() {
		t := s.T()

		day := time.Now().UTC().AddDate(0, 0, 14)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		dbtest.CreateTestDay(t, s.DB, day, []string{"10:00", "11:00"}, nil)

		ownerID := dbtest.CreateTestAccount(t, s.DB, "owner@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, ownerID, 600)
		rewardID := dbtest.CreateTestReward(t, s.DB, "Lesson Discount", 500, nil)
		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", dbtest.TestPassword)
		grant := s.redeem(ownerToken, rewardID)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(account.RoleUser))
		reqBody := builder.NewBookingBuilder().WithDay(day).BuildDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		require.Equal(t, http.StatusCreated, bw.Code)

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &created))
		grantURL := bookingsURL + "/" + created.ID.String() + "/grant"

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, grantURL,
			map[string]any{"grant_id": grant.GrantID.String()}, otherToken)
		require.Equal(t, http.StatusForbidden, aw.Code, aw.Body.String())
	})
}

func (s *LoyaltySuite) TestAdjust() {
	s.Run("Normal case: staff can post a signed correction", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 300)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		adjustURL := "/api/accounts/" + accountID.String() + "/points/adjust"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL,
			map[string]any{"delta": -50, "reason": "no-show penalty"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var balance resdto.BalanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
		require.EqualValues(t, 250, balance.Balance)
	})

	s.Run("Normal case: a correction may drive the balance negative", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 30)
		staffID := dbtest.CreateTestAccount(t, s.DB, "staff@example.com", string(account.RoleStaff))
		staffToken := authtest.LoginUser(t, s.Router, "staff@example.com", dbtest.TestPassword)

		adjustURL := "/api/accounts/" + accountID.String() + "/points/adjust"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL,
			map[string]any{"delta": -50, "reason": "damaged tack"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var balance resdto.BalanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
		require.EqualValues(t, -20, balance.Balance)

		// The cached balance must equal the ledger sum, and the swing
		// is recorded as one entry for the full delta.
		var stored int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT points FROM accounts WHERE id = $1", accountID).Scan(&stored))
		require.EqualValues(t, -20, stored)

		var ledgerSum int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT COALESCE(SUM(amount), 0) FROM point_transactions WHERE account_id = $1",
			accountID).Scan(&ledgerSum))
		require.EqualValues(t, -20, ledgerSum)

		var amount int64
		var description string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT amount, description FROM point_transactions
			 WHERE account_id = $1 AND kind = 'ADMIN_ADJUSTMENT' AND amount < 0`,
			accountID).Scan(&amount, &description))
		require.EqualValues(t, -50, amount)
		require.Contains(t, description, staffID.String())
	})

	s.Run("Error case: negative balances rejected when the policy forbids them", func() {
		t := s.T()

		strictRouter := s.RouterWithConfig(func(cfg *config.Config) {
			cfg.Loyalty.AllowNegativeAdjust = false
		})

		accountID := dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 30)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		adjustURL := "/api/accounts/" + accountID.String() + "/points/adjust"
		w := httptest.PerformRequest(t, strictRouter, http.MethodPost, adjustURL,
			map[string]any{"delta": -50, "reason": "damaged tack"}, staffToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var stored int64
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT points FROM accounts WHERE id = $1", accountID).Scan(&stored))
		require.EqualValues(t, 30, stored)

		var count int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM point_transactions WHERE account_id = $1 AND amount < 0",
			accountID).Scan(&count))
		require.Zero(t, count, "a rejected adjustment must leave no ledger entry")
	})

	s.Run("Error case: riders cannot adjust balances", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		riderToken := authtest.LoginUser(t, s.Router, "rider@example.com", dbtest.TestPassword)

		adjustURL := "/api/accounts/" + accountID.String() + "/points/adjust"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL,
			map[string]any{"delta": 1000, "reason": "self serve"}, riderToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
