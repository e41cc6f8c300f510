//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stablebook/internal/domain/account"
	"stablebook/internal/handler/api"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/usecase/commands"
	"stablebook/internal/usecase/queries"
	"stablebook/tests/common/builder"
	"stablebook/tests/common/httptest"
	"stablebook/tests/common/testutil"
	commandsmock "stablebook/tests/mock/commands"
	queriesmock "stablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole account.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = account.RoleUser

	// stand-in for the auth middleware
	authStub := func(c *gin.Context) {
		c.Set("account_id", s.actorID)
		c.Set("account_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", s.handler.Submit)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PATCH("/bookings/:id/status", authStub, s.handler.UpdateStatus)
	s.router.POST("/bookings/:id/grant", authStub, s.handler.ApplyGrant)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildDTO()
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(&commands.SubmitBookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("PENDING", response.Status)
	})

	s.Run("error: 409 Conflict when the date is blocked", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDateBlocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Date is blocked")
	})

	s.Run("error: 409 Conflict with open times when the slot is taken", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.SlotUnavailableError{OpenTimes: []string{"11:00", "14:00"}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot unavailable")
		s.Contains(rec.Body.String(), "11:00")
		s.Contains(rec.Body.String(), "14:00")
	})

	s.Run("error: 409 Conflict when day capacity is exceeded", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCapacityExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Day capacity exceeded")
	})

	s.Run("error: 422 Unprocessable Entity when a horse is unavailable", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrHorseUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unavailable")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing service", mutate: testutil.Field("service", nil)},
			{name: "missing day", mutate: testutil.Field("day", nil)},
			{name: "missing slot time", mutate: testutil.Field("slot_time", nil)},
			{name: "zero group size", mutate: testutil.Field("group_size", 0)},
			{name: "missing contact name", mutate: testutil.Field("contact_name", nil)},
			{name: "missing contact phone", mutate: testutil.Field("contact_phone", nil)},
			{name: "missing experience", mutate: testutil.Field("experience", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, "Response: %s", rec.Body.String())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"
	reqBody := map[string]any{"status": "CANCELLED"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "CANCELLED", s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when the booking belongs to someone else", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "CANCELLED", s.actorID, s.actorRole).
			Return(commands.ErrBookingNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not yours")
	})

	s.Run("error: 409 Conflict on an invalid transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "CANCELLED", s.actorID, s.actorRole).
			Return(commands.ErrInvalidStatusChange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status change")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "CANCELLED", s.actorID, s.actorRole).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestApplyGrant() {
	bookingID := uuid.New()
	grantID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/grant"
	reqBody := map[string]any{"grant_id": grantID.String()}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ApplyGrant(gomock.Any(), bookingID, grantID, s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when the grant was already used", func() {
		s.mockCommands.EXPECT().ApplyGrant(gomock.Any(), bookingID, grantID, s.actorID, s.actorRole).
			Return(commands.ErrGrantAlreadyUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 403 Forbidden when the grant belongs to someone else", func() {
		s.mockCommands.EXPECT().ApplyGrant(gomock.Any(), bookingID, grantID, s.actorID, s.actorRole).
			Return(commands.ErrGrantNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not yours")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when ledger entries reference the booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(commands.ErrBookingHasLedger).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cancel it instead")
	})
}
