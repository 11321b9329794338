package picker

import (
	"errors"
	"strings"
	"time"
)

// ErrUnrecognized is returned when typed input matches no accepted layout.
var ErrUnrecognized = errors.New("unrecognized time, try 2026-01-02 15:04 or 3:04PM")

var dateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 3:04PM",
	"2006-01-02 3:04pm",
	"2006-01-02 3:04 PM",
	"2006-01-02 3:04 pm",
}

var clockLayouts = []string{
	"15:04",
	"3:04PM",
	"3:04pm",
	"3:04 PM",
	"3:04 pm",
	"3PM",
	"3pm",
}

// Parse reads a typed time in now's location. A bare clock time means the
// next occurrence: today, or tomorrow when it has already passed.
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnrecognized
	}
	loc := now.Location()

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	for _, layout := range clockLayouts {
		c, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t := time.Date(now.Year(), now.Month(), now.Day(), c.Hour(), c.Minute(), 0, 0, loc)
		if !t.After(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, nil
	}

	return time.Time{}, ErrUnrecognized
}
