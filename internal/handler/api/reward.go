package api

import (
	"errors"
	"net/http"

	reqdto "stablebook/internal/handler/dto/request"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/usecase/commands"
	"stablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardCommands commands.RewardCommands
	rewardQueries  queries.RewardQueries
}

func NewRewardHandler(rewardCommands commands.RewardCommands, rewardQueries queries.RewardQueries) *RewardHandler {
	return &RewardHandler{
		rewardCommands: rewardCommands,
		rewardQueries:  rewardQueries,
	}
}

// @Summary List rewards
// @Description Active catalog rewards, cheapest first
// @Tags rewards
// @Produce json
// @Success 200 {array} resdto.RewardResponse
// @Router /rewards [get]
func (h *RewardHandler) List(c *gin.Context) {
	views, err := h.rewardQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRewardViews(views))
}

// @Summary List rewards with redemption counts
// @Description Full catalog including inactive entries, for administration
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardAdminResponse
// @Router /rewards/admin [get]
func (h *RewardHandler) ListAdmin(c *gin.Context) {
	views, err := h.rewardQueries.ListAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRewardAdminViews(views))
}

// @Summary Get reward
// @Description Get a catalog reward by ID
// @Tags rewards
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} resdto.RewardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rewards/{id} [get]
func (h *RewardHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reward ID format",
		})
		return
	}

	view, err := h.rewardQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRewardView(view))
}

// @Summary Create reward
// @Description Add a catalog reward
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RewardRequest true "Reward"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /rewards [post]
func (h *RewardHandler) Create(c *gin.Context) {
	var req reqdto.RewardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.rewardCommands.CreateReward(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
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

	c.JSON(http.StatusCreated, gin.H{"id": result.RewardID.String()})
}

// @Summary Update reward
// @Description Replace a catalog reward
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Param request body reqdto.RewardRequest true "Reward"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rewards/{id} [put]
func (h *RewardHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reward ID format",
		})
		return
	}

	var req reqdto.RewardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.rewardCommands.UpdateReward(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
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

// @Summary Delete reward
// @Description Remove a catalog reward that has never been redeemed
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rewards/{id} [delete]
func (h *RewardHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reward ID format",
		})
		return
	}

	err = h.rewardCommands.DeleteReward(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		case errors.Is(err, commands.ErrRewardInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reward has grants; deactivate it instead",
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
