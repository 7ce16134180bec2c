package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"calbook/internal/clock"
	"calbook/internal/domain"
	"calbook/internal/store"
)

const dateFormat = "02/01/2006"

// Engine orchestrates slot validation and storage for the four booking
// operations. Every operation returns a Result; storage faults are logged
// and converted to generic failure text, never surfaced to the caller.
type Engine struct {
	repo      store.AppointmentRepository
	validator SlotValidator
	clock     clock.Clock
	log       *slog.Logger
}

func NewEngine(repo store.AppointmentRepository, validator SlotValidator, clk clock.Clock, log *slog.Logger) *Engine {
	if validator == nil {
		validator = TimeSlotValidator{}
	}
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		repo:      repo,
		validator: validator,
		clock:     clk,
		log:       log.With(slog.String("component", "booking.engine")),
	}
}

// AddAppointment books a 30-minute slot starting at start on the given date.
func (e *Engine) AddAppointment(ctx context.Context, date time.Time, start domain.TimeOfDay) Result {
	end := start.Add(domain.SlotLength)

	if v := e.validator.Validate(e.clock.Now(), date, start, end); !v.Valid {
		return Failure(v.Message)
	}

	available, err := e.repo.IsSlotAvailable(ctx, date, start, end)
	if err != nil {
		e.log.Error("availability check failed", slog.Any("err", err), slog.Time("date", date), slog.String("start", start.String()))
		return Failure("Could not create appointment.")
	}
	if !available {
		return Failure("Time slot is not available.")
	}

	_, err = e.repo.Create(ctx, domain.Appointment{
		Date:  domain.DateOnly(date),
		Start: start,
		End:   end,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return Failure("Time slot is not available.")
		}
		e.log.Error("appointment create failed", slog.Any("err", err), slog.Time("date", date), slog.String("start", start.String()))
		return Failure("Could not create appointment.")
	}

	return Success(fmt.Sprintf("Appointment added on %s from %s to %s.", date.Format(dateFormat), start, end))
}

// DeleteAppointment removes the appointment at exactly (date, start).
// Unlike AddAppointment's two-step past check, deletion compares the
// combined date+time instant against now.
func (e *Engine) DeleteAppointment(ctx context.Context, date time.Time, start domain.TimeOfDay) Result {
	now := e.clock.Now()
	instant := time.Date(date.Year(), date.Month(), date.Day(), int(start)/60, int(start)%60, 0, 0, now.Location())
	if instant.Before(now) {
		return Failure("Cannot delete past appointments.")
	}

	appt, err := e.repo.FindByDateAndStart(ctx, date, start)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Failure(fmt.Sprintf("Appointment not found on %s at %s.", date.Format(dateFormat), start))
		}
		e.log.Error("appointment lookup failed", slog.Any("err", err), slog.Time("date", date), slog.String("start", start.String()))
		return Failure("Could not delete the appointment.")
	}

	if err := e.repo.Delete(ctx, appt); err != nil {
		e.log.Error("appointment delete failed", slog.Any("err", err), slog.String("appointment_id", appt.ID.String()))
		return Failure("Could not delete the appointment.")
	}

	return Success(fmt.Sprintf("Appointment deleted on %s at %s.", date.Format(dateFormat), start))
}

// FindAppointment reports the next free 30-minute slot on the given date.
func (e *Engine) FindAppointment(ctx context.Context, date time.Time) Result {
	now := e.clock.Now()
	if domain.DateOnly(date).Before(domain.DateOnly(now)) {
		return Failure("Cannot find appointments for past dates.")
	}

	start := domain.OpeningTime
	if domain.SameDate(date, now) {
		start = domain.TimeOfDayFrom(now).RoundUpToSlot()
	}

	slot, found, err := e.repo.FindNextAvailableSlot(ctx, date, start)
	if err != nil {
		e.log.Error("slot search failed", slog.Any("err", err), slog.Time("date", date))
		return Failure("An error occurred while trying to find an appointment.")
	}
	if !found {
		return Failure("No available slots for the day.")
	}

	return Success(fmt.Sprintf("Next available slot is on %s at %s.", date.Format(dateFormat), slot))
}

// KeepTimeslot reserves the first day, scanning forward from today, on which
// the fixed time-of-day is free. A validation failure on any candidate day
// ends the whole search rather than skipping that day.
func (e *Engine) KeepTimeslot(ctx context.Context, start domain.TimeOfDay) Result {
	now := e.clock.Now()
	end := start.Add(domain.SlotLength)

	day := domain.DateOnly(now)
	if domain.TimeOfDayFrom(now) > start {
		day = day.AddDate(0, 0, 1)
	}
	limit := domain.DateOnly(now).AddDate(1, 0, 0)

	for {
		if v := e.validator.Validate(now, day, start, end); !v.Valid {
			return Failure(v.Message)
		}

		available, err := e.repo.IsSlotAvailable(ctx, day, start, end)
		if err != nil {
			e.log.Error("availability check failed", slog.Any("err", err), slog.Time("date", day), slog.String("start", start.String()))
			return Failure("An error occurred while trying to keep the timeslot.")
		}
		if available {
			_, err := e.repo.Create(ctx, domain.Appointment{Date: day, Start: start, End: end})
			if err != nil {
				e.log.Error("timeslot reserve failed", slog.Any("err", err), slog.Time("date", day), slog.String("start", start.String()))
				return Failure("An error occurred while trying to keep the timeslot.")
			}
			return Success(fmt.Sprintf("Reserved timeslot at %s on %s.", start, day.Format(dateFormat)))
		}

		day = day.AddDate(0, 0, 1)
		if day.After(limit) {
			return Failure("Could not find an available slot within a year.")
		}
	}
}
