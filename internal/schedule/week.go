package schedule

import "time"

// dateLayout is the civil date wire format used across the schema.
const dateLayout = "2006-01-02"

// WeekWindow is a derived ISO week: seven consecutive civil dates starting
// Monday. Start and End are the first and last date keys of the window.
type WeekWindow struct {
	Start string
	End   string
	Dates [7]string
}

// DateKey formats a moment as its civil date in the moment's own location.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate interprets a "YYYY-MM-DD" string as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, loc)
}

// NewWeekWindow derives the ISO week containing now shifted by offset weeks,
// evaluated in loc. offset 0 is the current week, -1 the previous, 1 the next.
func NewWeekWindow(now time.Time, offset int, loc *time.Location) WeekWindow {
	local := now.In(loc).AddDate(0, 0, offset*7)

	// Walk back to Monday. time.Weekday has Sunday=0, ISO weeks start Monday.
	back := (int(local.Weekday()) + 6) % 7
	monday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -back)

	var w WeekWindow
	for i := 0; i < 7; i++ {
		w.Dates[i] = DateKey(monday.AddDate(0, 0, i))
	}
	w.Start = w.Dates[0]
	w.End = w.Dates[6]
	return w
}

// Contains reports whether the date key falls inside the window.
func (w WeekWindow) Contains(date string) bool {
	return w.Start <= date && date <= w.End
}
