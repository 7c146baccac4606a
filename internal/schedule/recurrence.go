package schedule

import (
	"time"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

// Applicable reports whether the routine task recurs on the given calendar
// date. Weekly days use 0=Sunday..6=Saturday, matching time.Weekday. Unknown
// repetition types fail closed. The resolver is agnostic to is_active; the
// caller filters inactive routines before asking.
func Applicable(task models.RoutineTask, date time.Time) bool {
	switch task.RepetitionType {
	case models.RepetitionDaily:
		return true
	case models.RepetitionWeekly:
		day := int64(date.Weekday())
		for _, d := range task.WeeklyDays {
			if d == day {
				return true
			}
		}
		return false
	case models.RepetitionSingle:
		return task.SpecificDate != nil && *task.SpecificDate == DateKey(date)
	default:
		return false
	}
}

// ApplicableTasks filters active routines down to those recurring on date.
func ApplicableTasks(tasks []models.RoutineTask, date time.Time) []models.RoutineTask {
	var out []models.RoutineTask
	for _, t := range tasks {
		if !t.IsActive {
			continue
		}
		if Applicable(t, date) {
			out = append(out, t)
		}
	}
	return out
}
