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

type HorseHandler struct {
	horseCommands commands.HorseCommands
	horseQueries  queries.HorseQueries
}

func NewHorseHandler(horseCommands commands.HorseCommands, horseQueries queries.HorseQueries) *HorseHandler {
	return &HorseHandler{
		horseCommands: horseCommands,
		horseQueries:  horseQueries,
	}
}

// @Summary List horses
// @Description The roster; pass all=true to include retired horses
// @Tags horses
// @Produce json
// @Param all query bool false "Include retired horses"
// @Success 200 {array} resdto.HorseResponse
// @Router /horses [get]
func (h *HorseHandler) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	views, err := h.horseQueries.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHorseViews(views))
}

// @Summary Create horse
// @Description Add a horse to the roster
// @Tags horses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.HorseRequest true "Horse"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /horses [post]
func (h *HorseHandler) Create(c *gin.Context) {
	var req reqdto.HorseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.horseCommands.CreateHorse(c.Request.Context(), req.ToCommand())
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

	c.JSON(http.StatusCreated, gin.H{"id": result.HorseID.String()})
}

// @Summary Update horse
// @Description Rename, reclassify, or retire a horse
// @Tags horses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Horse ID"
// @Param request body reqdto.HorseRequest true "Horse"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /horses/{id} [put]
func (h *HorseHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid horse ID format",
		})
		return
	}

	var req reqdto.HorseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.horseCommands.UpdateHorse(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHorseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Horse not found",
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
