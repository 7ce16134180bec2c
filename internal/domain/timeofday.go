package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a time-of-day offset in whole minutes since midnight.
type TimeOfDay int

const (
	OpeningTime TimeOfDay = 9 * 60  // 09:00
	ClosingTime TimeOfDay = 17 * 60 // 17:00

	SlotLength TimeOfDay = 30
)

// ParseTimeOfDay parses a 24-hour "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return TimeOfDayFrom(t), nil
}

// TimeOfDayFrom extracts the time-of-day from an instant, truncated to
// whole minutes.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes TimeOfDay) TimeOfDay {
	return t + minutes
}

// RoundUpToSlot rounds up to the next 30-minute boundary. Values already on
// a boundary are returned unchanged.
func (t TimeOfDay) RoundUpToSlot() TimeOfDay {
	if rem := t % SlotLength; rem != 0 {
		return t + SlotLength - rem
	}
	return t
}

// DateOnly strips the time-of-day component, keeping the calendar date at
// midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
