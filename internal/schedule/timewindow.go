// Package schedule holds the pure scheduling core: time-window evaluation,
// recurrence resolution, interval conflict detection, week derivation and the
// week-matrix / availability transforms. Nothing in this package performs I/O
// or fails; callers feed it rows and interpret the results.
//
// Times of day are civil "HH:MM" strings and dates are civil "YYYY-MM-DD"
// strings throughout. Both formats compare lexicographically in chronological
// order, which is what every predicate below relies on.
package schedule

import "github.com/shiftdesk/shiftdesk-api/internal/models"

// Window is a shift's active period within one calendar day.
type Window struct {
	Start      string
	End        string
	Overnight  bool
	Split      bool
	SplitStart *string
	SplitEnd   *string
}

// WindowFromAssignment builds a Window from a denormalized assignment row.
func WindowFromAssignment(a models.ShiftAssignment) Window {
	return Window{
		Start:      a.StartTime,
		End:        a.EndTime,
		Overnight:  a.IsOvernight,
		Split:      a.IsSplit,
		SplitStart: a.SplitStartTime,
		SplitEnd:   a.SplitEndTime,
	}
}

// Within reports whether the time of day falls inside the window.
//
// Split windows match when either period contains now, both periods inclusive
// of both ends. A split window with a missing bound treats that period as
// never matching. Overnight windows wrap past midnight: now >= start OR
// now <= end. This is an approximation valid for "current moment" queries
// only; it never ties the two sides to different calendar dates, so it must
// not be used to interrogate arbitrary historical instants.
func Within(now string, w Window) bool {
	if w.Split {
		if w.Start <= now && now <= w.End {
			return true
		}
		return w.SplitStart != nil && w.SplitEnd != nil &&
			*w.SplitStart <= now && now <= *w.SplitEnd
	}
	if w.Overnight {
		return now >= w.Start || now <= w.End
	}
	return w.Start <= now && now <= w.End
}
