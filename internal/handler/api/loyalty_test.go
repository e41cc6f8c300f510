//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stablebook/internal/domain/account"
	"stablebook/internal/handler/api"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/usecase/commands"
	"stablebook/tests/common/httptest"
	commandsmock "stablebook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoyaltyCommands
	handler      *api.LoyaltyHandler

	actorID uuid.UUID
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockCommands)

	s.actorID = uuid.New()

	authStub := func(c *gin.Context) {
		c.Set("account_id", s.actorID)
		c.Set("account_role", account.RoleUser)
		c.Next()
	}

	s.router.POST("/loyalty/redeem", authStub, s.handler.Redeem)
	s.router.POST("/accounts/:id/points/adjust", authStub, s.handler.Adjust)
	s.router.POST("/bookings/:id/award", authStub, s.handler.AwardCompletion)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func (s *LoyaltyHandlerTestSuite) TestRedeem() {
	url := "/loyalty/redeem"
	rewardID := uuid.New()
	reqBody := map[string]any{"reward_id": rewardID.String()}

	s.Run("success: returns 201 Created with grant and new balance", func() {
		grantID := uuid.New()
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), s.actorID, rewardID).
			Return(&commands.RedeemResult{GrantID: grantID, NewBalance: 150}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(grantID, response.GrantID)
		s.Equal(int64(150), response.NewBalance)
	})

	s.Run("error: 404 Not Found for unknown reward", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), s.actorID, rewardID).
			Return(nil, commands.ErrRewardNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reward not found")
	})

	s.Run("error: 409 Conflict for an inactive reward", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), s.actorID, rewardID).
			Return(nil, commands.ErrRewardInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reward is inactive")
	})

	s.Run("error: 409 Conflict when stock is exhausted", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), s.actorID, rewardID).
			Return(nil, commands.ErrRewardOutOfStock).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reward is out of stock")
	})

	s.Run("error: 422 Unprocessable Entity when the balance cannot cover the cost", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), s.actorID, rewardID).
			Return(nil, commands.ErrInsufficientPoints).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Insufficient points")
	})

	s.Run("error: 400 Bad Request when reward_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *LoyaltyHandlerTestSuite) TestAdjust() {
	accountID := uuid.New()
	url := "/accounts/" + accountID.String() + "/points/adjust"
	reqBody := map[string]any{"delta": -50, "reason": "no-show penalty"}

	s.Run("success: returns 200 OK with the new balance", func() {
		s.mockCommands.EXPECT().AdjustPoints(gomock.Any(), accountID, int64(-50), "no-show penalty", s.actorID).
			Return(&commands.AdjustResult{NewBalance: 250}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(250), response.Balance)
	})

	s.Run("error: 404 Not Found for unknown account", func() {
		s.mockCommands.EXPECT().AdjustPoints(gomock.Any(), accountID, int64(-50), "no-show penalty", s.actorID).
			Return(nil, commands.ErrAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Account not found")
	})

	s.Run("error: 422 Unprocessable Entity when the balance would go negative", func() {
		s.mockCommands.EXPECT().AdjustPoints(gomock.Any(), accountID, int64(-50), "no-show penalty", s.actorID).
			Return(nil, commands.ErrNegativeBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "negative")
	})

	s.Run("error: 400 Bad Request for malformed account ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/accounts/nope/points/adjust", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid account ID format")
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"delta": -50}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *LoyaltyHandlerTestSuite) TestAwardCompletion() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/award"
	reqBody := map[string]any{"points": 75}

	s.Run("success: returns 200 OK with the new balance", func() {
		s.mockCommands.EXPECT().AwardBookingCompletion(gomock.Any(), bookingID, int64(75)).
			Return(&commands.AdjustResult{NewBalance: 175}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(175), response.Balance)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().AwardBookingCompletion(gomock.Any(), bookingID, int64(75)).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 Conflict when the booking is not completed", func() {
		s.mockCommands.EXPECT().AwardBookingCompletion(gomock.Any(), bookingID, int64(75)).
			Return(nil, commands.ErrBookingNotCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not completed")
	})

	s.Run("error: 409 Conflict when the booking has no linked account", func() {
		s.mockCommands.EXPECT().AwardBookingCompletion(gomock.Any(), bookingID, int64(75)).
			Return(nil, commands.ErrBookingNotLinked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no account to credit")
	})

	s.Run("error: 400 Bad Request for a zero award", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
