package models

import (
	"fmt"
	"regexp"
	"time"
)

// TimeWindow is a same-day interval in zero-padded 24h local time.
// Comparison is lexicographic on the "HH:MM" strings, which orders
// correctly for same-day windows. A window with End < Start is not
// treated as overnight-spanning: it never matches.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (tw TimeWindow) Valid() bool {
	return clockPattern.MatchString(tw.Start) && clockPattern.MatchString(tw.End)
}

// Contains reports whether the clock string falls inside the window,
// bounds inclusive.
func (tw TimeWindow) Contains(clock string) bool {
	return tw.Start <= clock && clock <= tw.End
}

// ClockOf renders a time as the zero-padded "HH:MM" form windows match on.
func ClockOf(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// AnyWindowContains applies the time-eligibility rule: an empty window
// list means always eligible, otherwise at least one window must match.
func AnyWindowContains(windows []TimeWindow, t time.Time) bool {
	if len(windows) == 0 {
		return true
	}
	clock := ClockOf(t)
	for _, w := range windows {
		if w.Contains(clock) {
			return true
		}
	}
	return false
}
