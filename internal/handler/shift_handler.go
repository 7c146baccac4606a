package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/service"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
	"github.com/shiftdesk/shiftdesk-api/pkg/response"
)

// ShiftHandler manages shift assignment endpoints. All routes are admin-only;
// the service enforces the role again on every call.
type ShiftHandler struct {
	assignments *service.AssignmentService
}

// NewShiftHandler constructs handler.
func NewShiftHandler(assignments *service.AssignmentService) *ShiftHandler {
	return &ShiftHandler{assignments: assignments}
}

// Assign godoc
// @Summary Assign a shift to a user on a date
// @Tags Shifts
// @Accept json
// @Produce json
// @Param payload body dto.AssignShiftRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /shifts/assign [post]
func (h *ShiftHandler) Assign(c *gin.Context) {
	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	assignment, err := h.assignments.Assign(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Remove godoc
// @Summary Remove a user's shift on a date
// @Tags Shifts
// @Accept json
// @Produce json
// @Param payload body dto.RemoveShiftRequest true "Removal payload"
// @Success 204
// @Router /shifts [delete]
func (h *ShiftHandler) Remove(c *gin.Context) {
	var req dto.RemoveShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.assignments.Remove(c.Request.Context(), claimsFromContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BulkAssign godoc
// @Summary Assign a shift to several users across several dates
// @Tags Shifts
// @Accept json
// @Produce json
// @Param payload body dto.BulkAssignRequest true "Bulk payload"
// @Success 200 {object} response.Envelope
// @Router /shifts/bulk [post]
func (h *ShiftHandler) BulkAssign(c *gin.Context) {
	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.assignments.BulkAssign(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Copy godoc
// @Summary Copy one user's shifts onto other users
// @Tags Shifts
// @Accept json
// @Produce json
// @Param payload body dto.CopyShiftsRequest true "Copy payload"
// @Success 200 {object} response.Envelope
// @Router /shifts/copy [post]
func (h *ShiftHandler) Copy(c *gin.Context) {
	var req dto.CopyShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.assignments.Copy(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
