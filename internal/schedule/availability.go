package schedule

import (
	"strings"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

// Availability answers "is this user available on date D" with a
// human-readable warning for the edge cases.
type Availability struct {
	IsScheduled       bool                    `json:"is_scheduled"`
	Schedule          *models.ShiftAssignment `json:"schedule,omitempty"`
	HasPersonalEvents bool                    `json:"has_personal_events"`
	Events            []models.PersonalEvent  `json:"events"`
	Warning           string                  `json:"warning,omitempty"`
}

// CheckAvailability combines the user's single assignment for a date with the
// personal events covering it. The warning follows a fixed decision table:
// unscheduled with no events, unscheduled with events, scheduled with events;
// a scheduled user without events produces no warning.
func CheckAvailability(assignment *models.ShiftAssignment, events []models.PersonalEvent) Availability {
	result := Availability{
		IsScheduled:       assignment != nil,
		Schedule:          assignment,
		HasPersonalEvents: len(events) > 0,
		Events:            events,
	}
	if result.Events == nil {
		result.Events = []models.PersonalEvent{}
	}

	switch {
	case !result.IsScheduled && !result.HasPersonalEvents:
		result.Warning = "User has no scheduled shift for this date"
	case !result.IsScheduled && result.HasPersonalEvents:
		result.Warning = "User has personal events: " + eventTitles(events)
	case result.IsScheduled && result.HasPersonalEvents:
		result.Warning = "User is scheduled but also has events: " + eventTitles(events)
	}
	return result
}

func eventTitles(events []models.PersonalEvent) string {
	titles := make([]string, len(events))
	for i, e := range events {
		titles[i] = e.Title
	}
	return strings.Join(titles, ", ")
}
