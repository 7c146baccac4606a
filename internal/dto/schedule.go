package dto

import (
	"github.com/shiftdesk/shiftdesk-api/internal/models"
	"github.com/shiftdesk/shiftdesk-api/internal/repository"
	"github.com/shiftdesk/shiftdesk-api/internal/schedule"
)

// AssignShiftRequest pins one user to a template on one date.
type AssignShiftRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	ShiftTemplateID string `json:"shift_template_id" validate:"required"`
}

// RemoveShiftRequest clears the assignment for one slot.
type RemoveShiftRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

// BulkAssignRequest assigns the template to every user × date combination.
type BulkAssignRequest struct {
	UserIDs         []string `json:"user_ids" validate:"required,min=1,dive,required"`
	Dates           []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	ShiftTemplateID string   `json:"shift_template_id" validate:"required"`
}

// CopyShiftsRequest replicates one user's assignments onto other users.
type CopyShiftsRequest struct {
	SourceUserID  string   `json:"source_user_id" validate:"required"`
	TargetUserIDs []string `json:"target_user_ids" validate:"required,min=1,dive,required"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// BulkAssignResult reports the outcome of a batch write. Failed is only
// populated when the batch runs in non-atomic mode.
type BulkAssignResult struct {
	Requested int                      `json:"requested"`
	Assigned  int                      `json:"assigned"`
	Failed    []repository.BulkFailure `json:"failed,omitempty"`
}

// WeekScheduleResponse is the per-user per-day grid for one ISO week.
type WeekScheduleResponse struct {
	WeekStart string                 `json:"week_start"`
	WeekEnd   string                 `json:"week_end"`
	Dates     []string               `json:"dates"`
	Users     []models.User          `json:"users"`
	Matrix    schedule.Matrix        `json:"matrix"`
	Templates []models.ShiftTemplate `json:"templates"`
}

// CurrentlyWorkingResponse lists who is on shift at the evaluated instant.
type CurrentlyWorkingResponse struct {
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	UserIDs []string `json:"user_ids"`
}
