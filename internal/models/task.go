package models

import (
	"time"

	"github.com/lib/pq"
)

// Scheduled task statuses.
const (
	TaskStatusOngoing   = "ongoing"
	TaskStatusCompleted = "completed"
	TaskStatusCancelled = "cancelled"
)

// ScheduledTask is an ad-hoc timed task a user plans for one civil date.
// Tasks for the same user and date must not overlap.
type ScheduledTask struct {
	ID            string        `db:"id" json:"id"`
	UserID        string        `db:"user_id" json:"user_id"`
	Title         string        `db:"title" json:"title"`
	Description   *string       `db:"description" json:"description,omitempty"`
	Date          string        `db:"date" json:"date"`
	StartTime     string        `db:"start_time" json:"start_time"`
	EndTime       string        `db:"end_time" json:"end_time"`
	Status        string        `db:"status" json:"status"`
	IsRecurring   bool          `db:"is_recurring" json:"is_recurring"`
	RecurringDays pq.Int64Array `db:"recurring_days" json:"recurring_days,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// RepetitionType enumerates how a routine task recurs.
type RepetitionType string

const (
	RepetitionDaily  RepetitionType = "daily"
	RepetitionWeekly RepetitionType = "weekly"
	RepetitionSingle RepetitionType = "single"
)

// RoutineTask is a recurring task resolved against a calendar date at read
// time. Weekly days use 0=Sunday..6=Saturday. Deletion only flips is_active;
// rows are never removed so history stays auditable.
type RoutineTask struct {
	ID             string         `db:"id" json:"id"`
	UserID         string         `db:"user_id" json:"user_id"`
	Title          string         `db:"title" json:"title"`
	StartTime      string         `db:"start_time" json:"start_time"`
	EndTime        string         `db:"end_time" json:"end_time"`
	RepetitionType RepetitionType `db:"repetition_type" json:"repetition_type"`
	WeeklyDays     pq.Int64Array  `db:"weekly_days" json:"weekly_days,omitempty"`
	SpecificDate   *string        `db:"specific_date" json:"specific_date,omitempty"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}
