package schedule

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := ParseDate(date, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestApplicableDaily(t *testing.T) {
	task := models.RoutineTask{RepetitionType: models.RepetitionDaily}

	assert.True(t, Applicable(task, mustDate(t, "2024-03-04")))
	assert.True(t, Applicable(task, mustDate(t, "2024-03-10")))
}

func TestApplicableWeekly(t *testing.T) {
	// Monday (1) and Wednesday (3), weekday numbering 0=Sunday..6=Saturday.
	task := models.RoutineTask{
		RepetitionType: models.RepetitionWeekly,
		WeeklyDays:     pq.Int64Array{1, 3},
	}

	// 2024-03-04 is a Monday.
	week := []struct {
		date string
		want bool
	}{
		{"2024-03-04", true},  // Monday
		{"2024-03-05", false}, // Tuesday
		{"2024-03-06", true},  // Wednesday
		{"2024-03-07", false},
		{"2024-03-08", false},
		{"2024-03-09", false},
		{"2024-03-10", false}, // Sunday
	}
	for _, tt := range week {
		assert.Equal(t, tt.want, Applicable(task, mustDate(t, tt.date)), "date=%s", tt.date)
	}
}

func TestApplicableSingle(t *testing.T) {
	date := "2024-03-15"
	task := models.RoutineTask{
		RepetitionType: models.RepetitionSingle,
		SpecificDate:   &date,
	}

	assert.True(t, Applicable(task, mustDate(t, "2024-03-15")))
	assert.False(t, Applicable(task, mustDate(t, "2024-03-14")))
	assert.False(t, Applicable(task, mustDate(t, "2024-03-16")))
}

func TestApplicableSingleWithoutDate(t *testing.T) {
	task := models.RoutineTask{RepetitionType: models.RepetitionSingle}
	assert.False(t, Applicable(task, mustDate(t, "2024-03-15")))
}

func TestApplicableUnknownTypeFailsClosed(t *testing.T) {
	task := models.RoutineTask{RepetitionType: "monthly"}
	assert.False(t, Applicable(task, mustDate(t, "2024-03-15")))
}

func TestApplicableTasksFiltersInactive(t *testing.T) {
	tasks := []models.RoutineTask{
		{ID: "r1", RepetitionType: models.RepetitionDaily, IsActive: true},
		{ID: "r2", RepetitionType: models.RepetitionDaily, IsActive: false},
		{ID: "r3", RepetitionType: models.RepetitionWeekly, WeeklyDays: pq.Int64Array{0}, IsActive: true},
	}

	// Monday: r2 inactive, r3 only recurs Sundays.
	out := ApplicableTasks(tasks, mustDate(t, "2024-03-04"))
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
}
