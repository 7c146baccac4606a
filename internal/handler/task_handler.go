package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/service"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
	"github.com/shiftdesk/shiftdesk-api/pkg/response"
)

// TaskHandler manages scheduled task and routine endpoints. Tasks are
// personal; the acting user always comes from the token claims.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler constructs handler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListScheduled godoc
// @Summary List the caller's scheduled tasks for a date
// @Tags Tasks
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /tasks/scheduled [get]
func (h *TaskHandler) ListScheduled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date is required"))
		return
	}

	tasks, err := h.tasks.ListScheduledForDate(c.Request.Context(), claims.UserID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil)
}

// CreateScheduled godoc
// @Summary Plan a scheduled task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body dto.CreateScheduledTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Router /tasks/scheduled [post]
func (h *TaskHandler) CreateScheduled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.CreateScheduledTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	task, err := h.tasks.CreateScheduled(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// UpdateScheduled godoc
// @Summary Update a scheduled task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param payload body dto.UpdateScheduledTaskRequest true "Task payload"
// @Success 200 {object} response.Envelope
// @Router /tasks/scheduled/{id} [put]
func (h *TaskHandler) UpdateScheduled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.UpdateScheduledTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	task, err := h.tasks.UpdateScheduled(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task, nil)
}

// DeleteScheduled godoc
// @Summary Delete a scheduled task
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/scheduled/{id} [delete]
func (h *TaskHandler) DeleteScheduled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.tasks.DeleteScheduled(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Agenda godoc
// @Summary Get the caller's merged agenda for a date
// @Tags Tasks
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /tasks/agenda [get]
func (h *TaskHandler) Agenda(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date is required"))
		return
	}

	agenda, err := h.tasks.DayAgenda(c.Request.Context(), claims.UserID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, agenda, nil)
}

// ListRoutines godoc
// @Summary List the caller's routine tasks
// @Tags Tasks
// @Produce json
// @Param date query string false "Only routines recurring on this date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tasks/routines [get]
func (h *TaskHandler) ListRoutines(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var (
		routines []models.RoutineTask
		err      error
	)
	if date := c.Query("date"); date != "" {
		routines, err = h.tasks.ListApplicableRoutines(c.Request.Context(), claims.UserID, date)
	} else {
		routines, err = h.tasks.ListRoutines(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routines, nil)
}

// CreateRoutine godoc
// @Summary Register a routine task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body dto.CreateRoutineTaskRequest true "Routine payload"
// @Success 201 {object} response.Envelope
// @Router /tasks/routines [post]
func (h *TaskHandler) CreateRoutine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.CreateRoutineTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	routine, err := h.tasks.CreateRoutine(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, routine)
}

// UpdateRoutine godoc
// @Summary Update a routine task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Param payload body dto.UpdateRoutineTaskRequest true "Routine payload"
// @Success 200 {object} response.Envelope
// @Router /tasks/routines/{id} [put]
func (h *TaskHandler) UpdateRoutine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.UpdateRoutineTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	routine, err := h.tasks.UpdateRoutine(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routine, nil)
}

// DeactivateRoutine godoc
// @Summary Deactivate a routine task
// @Tags Tasks
// @Param id path string true "Routine ID"
// @Success 204
// @Router /tasks/routines/{id} [delete]
func (h *TaskHandler) DeactivateRoutine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.tasks.DeactivateRoutine(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
