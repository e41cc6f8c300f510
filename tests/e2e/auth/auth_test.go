//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stablebook/internal/domain/account"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/tests/common/authtest"
	"stablebook/tests/common/builder"
	"stablebook/tests/common/dbtest"
	"stablebook/tests/common/httptest"
	"stablebook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/accounts/me"
	pointsURL = "/api/accounts/me/points"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestSignup() {
	s.Run("Normal case: signup creates the account and posts the signup bonus", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithEmail("newrider@example.com").BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var auth resdto.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &auth))
		require.NotEmpty(t, auth.AccessToken)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, auth.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me resdto.AccountResponse
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, "newrider@example.com", me.Email)
		require.Equal(t, "user", me.Role)
		require.EqualValues(t, 100, me.Points)
		require.NotEmpty(t, me.ReferralCode)
	})

	s.Run("Normal case: referral code credits both sides", func() {
		t := s.T()

		dbtest.CreateTestAccount(t, s.DB, "referrer@example.com", string(account.RoleUser))
		referrerToken := authtest.LoginUser(t, s.Router, "referrer@example.com", dbtest.TestPassword)

		var referrer resdto.AccountResponse
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, referrerToken)
		require.Equal(t, http.StatusOK, mw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &referrer))

		reqBody := builder.NewAuthBuilder().
			WithEmail("referred@example.com").
			WithReferralCode(referrer.ReferralCode).
			BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var auth resdto.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &auth))

		// New rider: signup bonus plus referral bonus.
		var referred resdto.AccountResponse
		mw = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, auth.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &referred))
		require.EqualValues(t, 300, referred.Points)

		// Referrer: referral bonus only, with the new rider named.
		mw = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, referrerToken)
		require.Equal(t, http.StatusOK, mw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &referrer))
		require.EqualValues(t, 200, referrer.Points)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, pointsURL, nil, referrerToken)
		require.Equal(t, http.StatusOK, pw.Code)

		var history resdto.PointHistoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &history))
		require.Len(t, history.Entries, 1)
		require.Equal(t, "REFERRAL_BONUS", history.Entries[0].Kind)
		require.Contains(t, history.Entries[0].Description, "referred@example.com")
	})

	s.Run("Normal case: unknown referral code is ignored", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().
			WithEmail("lonerider@example.com").
			WithReferralCode("ZZZZ9999").
			BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var auth resdto.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &auth))

		var me resdto.AccountResponse
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, auth.AccessToken)
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.EqualValues(t, 100, me.Points)
	})

	s.Run("Error case: duplicate email is rejected", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithEmail("twice@example.com").BuildSignupDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: valid credentials return a token", func() {
		t := s.T()

		dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		token := authtest.LoginUser(t, s.Router, "rider@example.com", dbtest.TestPassword)
		require.NotEmpty(t, token)
	})

	s.Run("Error case: wrong password returns 401", func() {
		t := s.T()

		dbtest.CreateTestAccount(t, s.DB, "rider@example.com", string(account.RoleUser))
		reqBody := builder.NewAuthBuilder().WithEmail("rider@example.com").BuildLoginDTO()
		reqBody.Password = "wrong-password"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown email returns 401", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithEmail("ghost@example.com").BuildLoginDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestAuthorization() {
	s.Run("Error case: protected endpoint without token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token returns 401", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "expired@example.com", string(account.RoleUser))
		helper := authtest.NewJWTHelper(s.Config.JWT)
		token := helper.CreateExpiredToken(t, accountID, account.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: point history lists the ledger newest first", func() {
		t := s.T()

		accountID := dbtest.CreateTestAccount(t, s.DB, "ledger@example.com", string(account.RoleUser))
		dbtest.AddPoints(t, s.DB, accountID, 500)
		token := authtest.LoginUser(t, s.Router, "ledger@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pointsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var history resdto.PointHistoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.EqualValues(t, 500, history.Balance)
		require.Len(t, history.Entries, 1)
		require.EqualValues(t, 500, history.Entries[0].Amount)
	})
}
