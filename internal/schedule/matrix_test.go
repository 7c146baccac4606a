package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

func testWeek(t *testing.T) WeekWindow {
	t.Helper()
	return NewWeekWindow(time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC), 0, time.UTC)
}

func TestBuildMatrixDimensions(t *testing.T) {
	users := []models.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}
	week := testWeek(t)
	assignments := []models.ShiftAssignment{
		{UserID: "u1", Date: "2024-03-04", StartTime: "09:00", EndTime: "17:00"},
		{UserID: "u2", Date: "2024-03-06", StartTime: "14:00", EndTime: "22:00"},
	}

	matrix := BuildMatrix(users, week, assignments, nil)

	require.Len(t, matrix, 3)
	cells := 0
	populated := 0
	for _, days := range matrix {
		require.Len(t, days, 7)
		for _, cell := range days {
			cells++
			if cell.Assignment != nil {
				populated++
			}
		}
	}
	assert.Equal(t, 21, cells)
	assert.Equal(t, 2, populated)
}

func TestBuildMatrixPlacesAssignmentAtKey(t *testing.T) {
	users := []models.User{{ID: "u1"}}
	week := testWeek(t)
	assignments := []models.ShiftAssignment{
		{ID: "a1", UserID: "u1", Date: "2024-03-05", StartTime: "09:00", EndTime: "17:00"},
	}

	matrix := BuildMatrix(users, week, assignments, nil)

	cell := matrix["u1"]["2024-03-05"]
	require.NotNil(t, cell.Assignment)
	assert.Equal(t, "a1", cell.Assignment.ID)
	assert.Nil(t, matrix["u1"]["2024-03-04"].Assignment)
}

func TestBuildMatrixIgnoresRowsOutsideWindow(t *testing.T) {
	users := []models.User{{ID: "u1"}}
	week := testWeek(t)
	assignments := []models.ShiftAssignment{
		{UserID: "u1", Date: "2024-02-26"},
		{UserID: "ghost", Date: "2024-03-05"},
	}

	matrix := BuildMatrix(users, week, assignments, nil)
	for _, cell := range matrix["u1"] {
		assert.Nil(t, cell.Assignment)
	}
	_, ok := matrix["ghost"]
	assert.False(t, ok, "unknown users are not invented")
}

func TestBuildMatrixAttachesCoveringEvents(t *testing.T) {
	users := []models.User{{ID: "u1"}, {ID: "u2"}}
	week := testWeek(t)
	events := []models.PersonalEvent{
		{ID: "e1", UserID: "u1", Title: "Vacation", StartDate: "2024-03-05", EndDate: "2024-03-07"},
		{ID: "e2", UserID: "u2", Title: "Dentist", StartDate: "2024-03-06", EndDate: "2024-03-06"},
	}

	matrix := BuildMatrix(users, week, nil, events)

	require.Len(t, matrix["u1"]["2024-03-05"].Events, 1)
	require.Len(t, matrix["u1"]["2024-03-06"].Events, 1)
	require.Len(t, matrix["u1"]["2024-03-07"].Events, 1)
	assert.Empty(t, matrix["u1"]["2024-03-04"].Events)
	assert.Empty(t, matrix["u1"]["2024-03-08"].Events)

	require.Len(t, matrix["u2"]["2024-03-06"].Events, 1)
	assert.Equal(t, "Dentist", matrix["u2"]["2024-03-06"].Events[0].Title)
	assert.Empty(t, matrix["u2"]["2024-03-05"].Events)
}
