package api

import (
	"errors"
	"net/http"

	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/handler/middleware"
	"stablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountQueries queries.AccountQueries
	bookingQueries queries.BookingQueries
}

func NewAccountHandler(accountQueries queries.AccountQueries, bookingQueries queries.BookingQueries) *AccountHandler {
	return &AccountHandler{
		accountQueries: accountQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Current account
// @Description Profile of the authenticated account, including referral code and balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} map[string]string
// @Router /accounts/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.accountQueries.GetByID(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Point history
// @Description Ledger entries and current balance, newest first
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PointHistoryResponse
// @Failure 401 {object} map[string]string
// @Router /accounts/me/points [get]
func (h *AccountHandler) PointHistory(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	history, err := h.accountQueries.PointHistory(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPointHistoryView(history))
}

// @Summary My reward grants
// @Description Redeemed rewards held by the authenticated account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GrantResponse
// @Failure 401 {object} map[string]string
// @Router /accounts/me/grants [get]
func (h *AccountHandler) Grants(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	grants, err := h.accountQueries.Grants(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGrantViews(grants))
}

// @Summary My bookings
// @Description Bookings linked to the authenticated account, newest first
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /accounts/me/bookings [get]
func (h *AccountHandler) Bookings(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}
