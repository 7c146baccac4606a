package dto

import "github.com/shiftdesk/shiftdesk-api/internal/models"

// CreateScheduledTaskRequest plans an ad-hoc task on one date.
type CreateScheduledTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string  `json:"end_time" validate:"required,datetime=15:04"`
	IsRecurring bool    `json:"is_recurring"`
	// Recurring days use 0=Sunday..6=Saturday.
	RecurringDays []int64 `json:"recurring_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// UpdateScheduledTaskRequest rewrites an existing task.
type UpdateScheduledTaskRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description,omitempty"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string  `json:"end_time" validate:"required,datetime=15:04"`
	Status        string  `json:"status" validate:"required,oneof=ongoing completed cancelled"`
	IsRecurring   bool    `json:"is_recurring"`
	RecurringDays []int64 `json:"recurring_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// CreateRoutineTaskRequest registers a recurring task.
type CreateRoutineTaskRequest struct {
	Title          string  `json:"title" validate:"required"`
	StartTime      string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string  `json:"end_time" validate:"required,datetime=15:04"`
	RepetitionType string  `json:"repetition_type" validate:"required,oneof=daily weekly single"`
	WeeklyDays     []int64 `json:"weekly_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	SpecificDate   *string `json:"specific_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRoutineTaskRequest rewrites a routine. Deactivation goes through the
// dedicated soft-delete endpoint, not this payload.
type UpdateRoutineTaskRequest struct {
	Title          string  `json:"title" validate:"required"`
	StartTime      string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string  `json:"end_time" validate:"required,datetime=15:04"`
	RepetitionType string  `json:"repetition_type" validate:"required,oneof=daily weekly single"`
	WeeklyDays     []int64 `json:"weekly_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	SpecificDate   *string `json:"specific_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AgendaItem is one entry of a user's merged day agenda.
type AgendaItem struct {
	Source    string `json:"source"` // "scheduled" or "routine"
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status,omitempty"`
}

// DayAgendaResponse merges scheduled tasks and applicable routines for a date.
type DayAgendaResponse struct {
	Date     string                 `json:"date"`
	Items    []AgendaItem           `json:"items"`
	Tasks    []models.ScheduledTask `json:"tasks"`
	Routines []models.RoutineTask   `json:"routines"`
}
