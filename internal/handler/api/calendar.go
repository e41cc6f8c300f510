package api

import (
	"net/http"

	reqdto "stablebook/internal/handler/dto/request"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/internal/usecase/commands"
	"stablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarCommands    commands.CalendarCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewCalendarHandler(calendarCommands commands.CalendarCommands, availabilityQueries queries.AvailabilityQueries) *CalendarHandler {
	return &CalendarHandler{
		calendarCommands:    calendarCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Day availability
// @Description Open times for a date: configured slots minus held ones; empty when blocked or unconfigured
// @Tags calendar
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/{date}/availability [get]
func (h *CalendarHandler) Availability(c *gin.Context) {
	day, err := parseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.availabilityQueries.AvailableTimes(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Get day configuration
// @Description Stored configuration for a date, or the implicit default when none exists
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayConfigResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/{date} [get]
func (h *CalendarHandler) GetDay(c *gin.Context) {
	day, err := parseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.availabilityQueries.DayConfig(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayConfigView(view))
}

// @Summary List day configurations
// @Description Stored configurations in a date range
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.DayConfigResponse
// @Failure 400 {object} map[string]string
// @Router /calendar [get]
func (h *CalendarHandler) ListDays(c *gin.Context) {
	from, to, err := parseDayRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.availabilityQueries.DayRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayConfigViews(views))
}

// @Summary Upsert day configuration
// @Description Replace the slot list, capacity, and blocked state for a date
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertDayConfigRequest true "Day configuration"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /calendar [put]
func (h *CalendarHandler) UpsertDay(c *gin.Context) {
	var req reqdto.UpsertDayConfigRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.calendarCommands.UpsertDayConfig(c.Request.Context(), req.ToCommand())
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

	c.Status(http.StatusNoContent)
}
