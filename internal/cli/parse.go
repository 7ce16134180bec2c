package cli

import (
	"fmt"
	"time"
)

// parseDate parses a "dd/MM" date, resolving the year from now. Malformed
// input is rejected here, before it reaches the booking engine.
func parseDate(s string, now time.Time) (time.Time, error) {
	t, err := time.Parse("02/01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expecting dd/MM", s)
	}
	return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
