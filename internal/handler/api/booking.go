package api

import (
	"errors"
	"net/http"

	reqdto "stablebook/internal/handler/dto/request"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/handler/middleware"
	"stablebook/internal/usecase/commands"
	"stablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking
// @Description Submit a booking for a date and time slot; anonymous submissions are allowed
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Account linkage is optional; walk-ins book without logging in.
	var accountID *uuid.UUID
	if id, ok := middleware.GetAccountID(c); ok {
		accountID = &id
	}
	role, _ := middleware.GetAccountRole(c)

	result, err := h.bookingCommands.Submit(c.Request.Context(), req.ToCommand(role.CanManage()), accountID)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) writeSubmitError(c *gin.Context, err error) {
	var slotErr *commands.SlotUnavailableError
	switch {
	case errors.Is(err, commands.ErrDateBlocked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Date is blocked",
		})
	case errors.As(err, &slotErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Slot unavailable",
			"detail": resdto.SlotUnavailableResponse{OpenTimes: slotErr.OpenTimes},
		})
	case errors.Is(err, commands.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Day capacity exceeded",
		})
	case errors.Is(err, commands.ErrHorseUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "One or more horses are unavailable",
		})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings by day range
// @Description Staff listing of bookings between two dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339 date)"
// @Param to query string true "Range end (RFC 3339 date)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	from, to, err := parseDayRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.bookingQueries.ListByDayRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle; riders may only cancel their own
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status change"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetAccountRole(c)

	err = h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking is not yours",
			})
		case errors.Is(err, commands.ErrInvalidStatusChange):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status change",
			})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Apply reward grant
// @Description Attach a redeemed reward to a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ApplyGrantRequest true "Grant to apply"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/grant [post]
func (h *BookingHandler) ApplyGrant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ApplyGrantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetAccountRole(c)

	err = h.bookingCommands.ApplyGrant(c.Request.Context(), id, req.GrantID, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrGrantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward grant not found",
			})
		case errors.Is(err, commands.ErrGrantNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reward grant is not yours",
			})
		case errors.Is(err, commands.ErrGrantAlreadyUsed),
			errors.Is(err, commands.ErrGrantAlreadyAttached),
			errors.Is(err, commands.ErrBookingNotOpenForGrant):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Remove a booking outright; bookings referenced by the point ledger must be cancelled instead
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	err = h.bookingCommands.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingHasLedger):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking has ledger entries; cancel it instead",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
