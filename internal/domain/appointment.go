package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Date      time.Time `bun:"appointment_date,notnull"`
	Start     TimeOfDay `bun:"start_minutes,notnull"`
	End       TimeOfDay `bun:"end_minutes,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Overlaps reports whether the appointment's [Start, End) interval conflicts
// with a candidate [start, end) interval on the same date.
func (a Appointment) Overlaps(start, end TimeOfDay) bool {
	return (a.Start <= start && a.End > start) || (a.Start < end && a.End >= end)
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}
