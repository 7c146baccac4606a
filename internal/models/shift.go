package models

import "time"

// ShiftTemplate is admin-managed reference data describing a reusable work
// window. Times of day are civil "HH:MM" strings; dates never appear here.
// An overnight template ends on the following calendar day (end < start), a
// split template is active during two disjoint windows of the same day.
type ShiftTemplate struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	StartTime      string    `db:"start_time" json:"start_time"`
	EndTime        string    `db:"end_time" json:"end_time"`
	IsOvernight    bool      `db:"is_overnight" json:"is_overnight"`
	IsSplit        bool      `db:"is_split" json:"is_split"`
	SplitStartTime *string   `db:"split_start_time" json:"split_start_time,omitempty"`
	SplitEndTime   *string   `db:"split_end_time" json:"split_end_time,omitempty"`
	CreatedBy      string    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ShiftAssignment pins a user to a shift on one civil date. The template
// fields are denormalized onto the row at assignment time so historical
// assignments stay stable when a template is later edited. At most one
// assignment exists per (user_id, date); a new one replaces the old.
type ShiftAssignment struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	Date            string    `db:"date" json:"date"`
	ShiftTemplateID string    `db:"shift_template_id" json:"shift_template_id"`
	StartTime       string    `db:"start_time" json:"start_time"`
	EndTime         string    `db:"end_time" json:"end_time"`
	IsOvernight     bool      `db:"is_overnight" json:"is_overnight"`
	IsSplit         bool      `db:"is_split" json:"is_split"`
	SplitStartTime  *string   `db:"split_start_time" json:"split_start_time,omitempty"`
	SplitEndTime    *string   `db:"split_end_time" json:"split_end_time,omitempty"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Snapshot copies the template window onto an assignment for the given slot.
func (t ShiftTemplate) Snapshot(userID, date, createdBy string) ShiftAssignment {
	return ShiftAssignment{
		UserID:          userID,
		Date:            date,
		ShiftTemplateID: t.ID,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		IsOvernight:     t.IsOvernight,
		IsSplit:         t.IsSplit,
		SplitStartTime:  t.SplitStartTime,
		SplitEndTime:    t.SplitEndTime,
		CreatedBy:       createdBy,
	}
}
