package schedule

import "github.com/shiftdesk/shiftdesk-api/internal/models"

// Overlaps reports whether two half-open [start, end) intervals intersect.
// Touching boundaries do not overlap: a task ending 10:00 coexists with one
// starting 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// FindConflict returns the first existing task whose interval overlaps the
// candidate, or nil. Callers pass tasks already narrowed to the candidate's
// user and date; no cross-user or cross-date checking happens here.
func FindConflict(candidate models.ScheduledTask, existing []models.ScheduledTask) *models.ScheduledTask {
	for i := range existing {
		t := existing[i]
		if t.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, t.StartTime, t.EndTime) {
			return &t
		}
	}
	return nil
}

// HasConflict reports whether the candidate overlaps any existing task.
func HasConflict(candidate models.ScheduledTask, existing []models.ScheduledTask) bool {
	return FindConflict(candidate, existing) != nil
}
