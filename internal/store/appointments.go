package store

import (
	"context"
	"time"

	"calbook/internal/domain"
)

// AppointmentRepository is the storage port the booking engine depends on.
// Implementations report ErrNotFound/ErrConflict through the sentinel errors
// in this package; anything else is treated as a storage fault.
type AppointmentRepository interface {
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	Delete(ctx context.Context, appt domain.Appointment) error
	FindByDateAndStart(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.Appointment, error)
	IsSlotAvailable(ctx context.Context, date time.Time, start, end domain.TimeOfDay) (bool, error)
	FindNextAvailableSlot(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.TimeOfDay, bool, error)
}
