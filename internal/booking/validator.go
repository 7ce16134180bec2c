package booking

import (
	"time"

	"calbook/internal/domain"
)

type Validation struct {
	Valid   bool
	Message string
}

func valid() Validation { return Validation{Valid: true} }

func invalid(message string) Validation { return Validation{Message: message} }

// SlotValidator decides whether a candidate (date, start, end) slot is
// legally bookable. Implementations are pure; now is passed in by the caller.
type SlotValidator interface {
	Validate(now, date time.Time, start, end domain.TimeOfDay) Validation
}

// reservedWindowStart opens the monthly blackout window; it runs until
// closing time on the reserved day only.
const reservedWindowStart = domain.TimeOfDay(16 * 60)

type TimeSlotValidator struct{}

func (TimeSlotValidator) Validate(now, date time.Time, start, end domain.TimeOfDay) Validation {
	today := domain.DateOnly(now)
	day := domain.DateOnly(date)

	if day.Before(today) {
		return invalid("The date is in the past.")
	}
	if day.Equal(today) && domain.TimeOfDayFrom(now) > start {
		return invalid("The time is in the past.")
	}
	if start < domain.OpeningTime || end > domain.ClosingTime {
		return invalid("The time slot is outside of business hours.")
	}
	if isReservedDay(day) && start >= reservedWindowStart && start < domain.ClosingTime {
		return invalid("This time slot is reserved and unavailable.")
	}
	return valid()
}

// isReservedDay reports whether date is the second day of the month's third
// Monday-aligned week: the first Monday on or after the 1st, plus 15 days.
// No guard is applied if the sum lands outside the month; the rule then
// never fires for that nominal month.
func isReservedDay(date time.Time) bool {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
	firstMonday := first.AddDate(0, 0, offset)
	return date.Equal(firstMonday.AddDate(0, 0, 15))
}
