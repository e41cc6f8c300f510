package api

import (
	"errors"
	"net/http"

	reqdto "stablebook/internal/handler/dto/request"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/handler/middleware"
	"stablebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyCommands commands.LoyaltyCommands
}

func NewLoyaltyHandler(loyaltyCommands commands.LoyaltyCommands) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyCommands: loyaltyCommands}
}

// @Summary Redeem reward
// @Description Spend points on a catalog reward; returns the grant and the new balance
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRewardRequest true "Reward to redeem"
// @Success 201 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /loyalty/redeem [post]
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemRewardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.loyaltyCommands.RedeemReward(c.Request.Context(), accountID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		case errors.Is(err, commands.ErrRewardInactive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reward is inactive",
			})
		case errors.Is(err, commands.ErrRewardOutOfStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reward is out of stock",
			})
		case errors.Is(err, commands.ErrInsufficientPoints):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient points",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RedeemResponse{
		GrantID:    result.GrantID,
		NewBalance: result.NewBalance,
	})
}

// @Summary Adjust points
// @Description Post a signed correction to an account's balance
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.AdjustPointsRequest true "Adjustment"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /accounts/{id}/points/adjust [post]
func (h *LoyaltyHandler) Adjust(c *gin.Context) {
	accountID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid account ID format",
		})
		return
	}

	var req reqdto.AdjustPointsRequest
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

	result, err := h.loyaltyCommands.AdjustPoints(c.Request.Context(), accountID, req.Delta, req.Reason, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		case errors.Is(err, commands.ErrNegativeBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Adjustment would make balance negative",
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

	c.JSON(http.StatusOK, resdto.BalanceResponse{Balance: result.NewBalance})
}

// @Summary Award completion bonus
// @Description Post the completion bonus for a finished booking
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AwardCompletionRequest true "Points to award"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/award [post]
func (h *LoyaltyHandler) AwardCompletion(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.AwardCompletionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.loyaltyCommands.AwardBookingCompletion(c.Request.Context(), bookingID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not completed",
			})
		case errors.Is(err, commands.ErrBookingNotLinked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking has no account to credit",
			})
		case errors.Is(err, commands.ErrInvalidAwardAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Award amount must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{Balance: result.NewBalance})
}
