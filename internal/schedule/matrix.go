package schedule

import "github.com/shiftdesk/shiftdesk-api/internal/models"

// DayCell is one user-day slot of the week matrix: the single assignment for
// that slot, if any, plus every personal event whose range covers the date.
type DayCell struct {
	Date       string                  `json:"date"`
	Assignment *models.ShiftAssignment `json:"assignment,omitempty"`
	Events     []models.PersonalEvent  `json:"events"`
}

// Matrix maps userID -> date -> cell. Every user owns exactly seven cells.
type Matrix map[string]map[string]DayCell

// BuildMatrix composes a week of assignments and personal events into a
// per-user per-day grid. It is a pure transform: the caller fetches the rows,
// and rows outside the window or belonging to unknown users are ignored.
func BuildMatrix(users []models.User, week WeekWindow, assignments []models.ShiftAssignment, events []models.PersonalEvent) Matrix {
	byUserDate := make(map[string]map[string]models.ShiftAssignment, len(users))
	for _, a := range assignments {
		if !week.Contains(a.Date) {
			continue
		}
		if byUserDate[a.UserID] == nil {
			byUserDate[a.UserID] = make(map[string]models.ShiftAssignment)
		}
		byUserDate[a.UserID][a.Date] = a
	}

	eventsByUser := make(map[string][]models.PersonalEvent)
	for _, e := range events {
		eventsByUser[e.UserID] = append(eventsByUser[e.UserID], e)
	}

	matrix := make(Matrix, len(users))
	for _, u := range users {
		days := make(map[string]DayCell, len(week.Dates))
		for _, date := range week.Dates {
			cell := DayCell{Date: date, Events: []models.PersonalEvent{}}
			if a, ok := byUserDate[u.ID][date]; ok {
				assignment := a
				cell.Assignment = &assignment
			}
			for _, e := range eventsByUser[u.ID] {
				if e.CoversDate(date) {
					cell.Events = append(cell.Events, e)
				}
			}
			days[date] = cell
		}
		matrix[u.ID] = days
	}
	return matrix
}
