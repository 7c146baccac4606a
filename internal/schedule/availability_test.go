package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

func TestCheckAvailabilityDecisionTable(t *testing.T) {
	assignment := &models.ShiftAssignment{ID: "a1", StartTime: "09:00", EndTime: "17:00"}
	events := []models.PersonalEvent{
		{Title: "Vacation"},
		{Title: "Doctor"},
	}

	tests := []struct {
		name        string
		assignment  *models.ShiftAssignment
		events      []models.PersonalEvent
		wantWarning string
	}{
		{
			name:        "unscheduled without events",
			wantWarning: "User has no scheduled shift for this date",
		},
		{
			name:        "unscheduled with events",
			events:      events,
			wantWarning: "User has personal events: Vacation, Doctor",
		},
		{
			name:        "scheduled with events",
			assignment:  assignment,
			events:      events,
			wantWarning: "User is scheduled but also has events: Vacation, Doctor",
		},
		{
			name:       "scheduled without events",
			assignment: assignment,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckAvailability(tt.assignment, tt.events)
			assert.Equal(t, tt.assignment != nil, result.IsScheduled)
			assert.Equal(t, len(tt.events) > 0, result.HasPersonalEvents)
			assert.Equal(t, tt.wantWarning, result.Warning)
			assert.NotNil(t, result.Events)
		})
	}
}

func TestCheckAvailabilityCarriesSchedule(t *testing.T) {
	assignment := &models.ShiftAssignment{ID: "a1"}
	result := CheckAvailability(assignment, nil)
	assert.Same(t, assignment, result.Schedule)
	assert.Empty(t, result.Events)
}
