package models

import "time"

type Statistics struct {
	TotalBreathed    int        `json:"totalBreathed"`
	TodayBreathed    int        `json:"todayBreathed"`
	LastBreathedApp  *AppInfo   `json:"lastBreathedApp,omitempty"`
	LastBreathedTime *time.Time `json:"lastBreathedTime,omitempty"`
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Increment records one completed breathing session. The daily counter
// resets lazily: when the stored last-breathed date differs from now's
// date it restarts at 1 (the session being recorded), not 0. There is no
// scheduled midnight reset. app is nil for standalone sessions.
func (s *Statistics) Increment(app *AppInfo, now time.Time) {
	s.TotalBreathed++
	if s.LastBreathedTime != nil && sameDay(*s.LastBreathedTime, now) {
		s.TodayBreathed++
	} else {
		s.TodayBreathed = 1
	}
	if app != nil {
		appCopy := *app
		s.LastBreathedApp = &appCopy
	}
	ts := now
	s.LastBreathedTime = &ts
}
