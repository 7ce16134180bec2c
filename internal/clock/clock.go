// Package clock supplies the current wall-clock time so "today" and "now"
// can be fixed deterministically in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }
