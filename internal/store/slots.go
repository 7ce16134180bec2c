package store

import (
	"time"

	"calbook/internal/domain"
)

// NextFreeSlot sweeps a day's appointments, ordered by start time ascending,
// for the first gap at or after the given starting time. When the date is
// today and now is already past the starting time, the sweep starts from now
// rounded up to the next 30-minute boundary. The starting time is never
// earlier than opening time, and a gap after the last appointment counts
// only while it begins before closing time.
func NextFreeSlot(now, date time.Time, start domain.TimeOfDay, appts []domain.Appointment) (domain.TimeOfDay, bool) {
	if domain.SameDate(date, now) {
		if current := domain.TimeOfDayFrom(now); current > start {
			start = current.RoundUpToSlot()
		}
	}
	if start < domain.OpeningTime {
		start = domain.OpeningTime
	}

	cursor := start
	for _, a := range appts {
		if cursor < a.Start {
			return cursor, true
		}
		if a.End > cursor {
			cursor = a.End
		}
	}
	if cursor < domain.ClosingTime {
		return cursor, true
	}
	return 0, false
}
