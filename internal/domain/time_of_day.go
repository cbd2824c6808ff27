package domain

import (
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// TimeOfDay is an offset from midnight, used for opening windows.
type TimeOfDay time.Duration

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, ErrMalformedTime)
	}
	return TimeOfDayOf(t), nil
}

// MustTimeOfDay is ParseTimeOfDay for package-level literals.
func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayOf extracts the time-of-day component of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// ParseClock parses an "HH:MM" start time into an instant on the reference day.
// Only the clock component is meaningful; day arithmetic past midnight wraps
// the time of day the same way the window check sees it.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", s, ErrMalformedTime)
	}
	return t, nil
}

// FormatClock renders the clock component of t as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}
