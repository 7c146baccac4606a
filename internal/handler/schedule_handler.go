package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiftdesk/shiftdesk-api/internal/service"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
	"github.com/shiftdesk/shiftdesk-api/pkg/response"
)

// ScheduleHandler serves the read side of the scheduler.
type ScheduleHandler struct {
	schedule     *service.ScheduleService
	availability *service.AvailabilityService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(schedule *service.ScheduleService, availability *service.AvailabilityService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, availability: availability}
}

// Week godoc
// @Summary Get the week schedule matrix
// @Tags Schedule
// @Produce json
// @Param week query int false "Week offset from the current week" default(0)
// @Success 200 {object} response.Envelope
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be an integer"))
		return
	}

	matrix, err := h.schedule.WeekMatrix(c.Request.Context(), offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matrix, nil)
}

// CurrentlyWorking godoc
// @Summary List users currently on shift
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/currently-working [get]
func (h *ScheduleHandler) CurrentlyWorking(c *gin.Context) {
	working, err := h.schedule.CurrentlyWorking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, working, nil)
}

// Export godoc
// @Summary Export the week schedule as CSV or PDF
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Param week query int false "Week offset from the current week" default(0)
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be an integer"))
		return
	}
	format := c.DefaultQuery("format", "csv")

	payload, contentType, err := h.schedule.ExportWeek(c.Request.Context(), offset, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("week-schedule.%s", format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

// Availability godoc
// @Summary Check a user's availability on a date
// @Tags Schedule
// @Produce json
// @Param userId query string true "User ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /schedule/availability [get]
func (h *ScheduleHandler) Availability(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "userId and date are required"))
		return
	}

	result, err := h.availability.Check(c.Request.Context(), userID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
