package models

import "time"

// EventStatus tracks the approval state of a personal event. The approval
// workflow itself lives outside this API; the status is stored and surfaced.
type EventStatus string

const (
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventDenied   EventStatus = "denied"
)

// PersonalEvent marks a user as occupied over an inclusive date range, for
// example vacation or a medical appointment. All-day events carry no times.
type PersonalEvent struct {
	ID          string      `db:"id" json:"id"`
	UserID      string      `db:"user_id" json:"user_id"`
	Title       string      `db:"title" json:"title"`
	EventType   string      `db:"event_type" json:"event_type"`
	StartDate   string      `db:"start_date" json:"start_date"`
	EndDate     string      `db:"end_date" json:"end_date"`
	IsAllDay    bool        `db:"is_all_day" json:"is_all_day"`
	StartTime   *string     `db:"start_time" json:"start_time,omitempty"`
	EndTime     *string     `db:"end_time" json:"end_time,omitempty"`
	Description *string     `db:"description" json:"description,omitempty"`
	Status      EventStatus `db:"status" json:"status"`
	ApprovedBy  *string     `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt  *time.Time  `db:"approved_at" json:"approved_at,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// CoversDate reports whether the event's inclusive date range contains the
// civil date. Dates are "YYYY-MM-DD" strings so lexicographic comparison is
// chronological.
func (e PersonalEvent) CoversDate(date string) bool {
	return e.StartDate <= date && date <= e.EndDate
}
