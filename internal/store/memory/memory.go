// Package memory is the in-memory reference implementation of the storage
// port, used by tests and as the contract baseline for the postgres repo.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"calbook/internal/clock"
	"calbook/internal/domain"
	"calbook/internal/store"
)

type Repository struct {
	mu    sync.Mutex
	clock clock.Clock
	appts []domain.Appointment
}

func NewRepository(clk clock.Clock) *Repository {
	if clk == nil {
		clk = clock.System{}
	}
	return &Repository{clock: clk}
}

func (r *Repository) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appts {
		if domain.SameDate(existing.Date, appt.Date) && existing.Overlaps(appt.Start, appt.End) {
			return domain.Appointment{}, store.ErrConflict
		}
	}

	if appt.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Appointment{}, err
		}
		appt.ID = id
	}
	now := r.clock.Now().UTC()
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = now
	}
	appt.UpdatedAt = now
	appt.Date = domain.DateOnly(appt.Date)

	r.appts = append(r.appts, appt)
	return appt, nil
}

func (r *Repository) Delete(ctx context.Context, appt domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appts {
		if existing.ID == appt.ID {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *Repository) FindByDateAndStart(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appts {
		if domain.SameDate(existing.Date, date) && existing.Start == start {
			return existing, nil
		}
	}
	return domain.Appointment{}, store.ErrNotFound
}

func (r *Repository) IsSlotAvailable(ctx context.Context, date time.Time, start, end domain.TimeOfDay) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appts {
		if domain.SameDate(existing.Date, date) && existing.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

func (r *Repository) FindNextAvailableSlot(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.TimeOfDay, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := make([]domain.Appointment, 0, len(r.appts))
	for _, existing := range r.appts {
		if domain.SameDate(existing.Date, date) {
			day = append(day, existing)
		}
	}
	sort.Slice(day, func(i, j int) bool {
		return day[i].Start < day[j].Start
	})

	slot, found := store.NextFreeSlot(r.clock.Now(), date, start, day)
	return slot, found, nil
}
