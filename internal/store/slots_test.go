package store

import (
	"testing"
	"time"

	"calbook/internal/domain"
)

var sweepNow = time.Date(2026, 6, 10, 10, 15, 0, 0, time.UTC)

func slot(start, end domain.TimeOfDay) domain.Appointment {
	return domain.Appointment{
		Date:  time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC),
		Start: start,
		End:   end,
	}
}

func TestNextFreeSlot_EmptyDay(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	got, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, nil)
	if !found || got != domain.OpeningTime {
		t.Fatalf("got (%v, %v), want (09:00, true)", got, found)
	}
}

func TestNextFreeSlot_FullyBookedDay(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	appts := []domain.Appointment{slot(9*60, 17*60)}
	if _, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, appts); found {
		t.Fatalf("expected no slot on a fully booked day")
	}
}

func TestNextFreeSlot_GapBetweenAppointments(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	appts := []domain.Appointment{
		slot(9*60, 10*60),
		slot(10*60+30, 11*60),
	}
	got, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, appts)
	if !found || got != 10*60 {
		t.Fatalf("got (%v, %v), want (10:00, true)", got, found)
	}
}

func TestNextFreeSlot_GapAtEndOfDay(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	appts := []domain.Appointment{slot(9*60, 16*60+30)}
	got, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, appts)
	if !found || got != 16*60+30 {
		t.Fatalf("got (%v, %v), want (16:30, true)", got, found)
	}
}

func TestNextFreeSlot_ClampsToNowOnSameDay(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	// Starting time 09:00 is behind now (10:15), so the sweep starts at 10:30.
	got, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, nil)
	if !found || got != 10*60+30 {
		t.Fatalf("got (%v, %v), want (10:30, true)", got, found)
	}
}

func TestNextFreeSlot_ClampsToOpeningTime(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	got, found := NextFreeSlot(sweepNow, date, 7*60, nil)
	if !found || got != domain.OpeningTime {
		t.Fatalf("got (%v, %v), want (09:00, true)", got, found)
	}
}

func TestNextFreeSlot_OverlappingAppointmentsAdvanceCursor(t *testing.T) {
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)
	// The second appointment ends before the first; the cursor must not move
	// backwards.
	appts := []domain.Appointment{
		slot(9*60, 11*60),
		slot(9*60+30, 10*60),
	}
	got, found := NextFreeSlot(sweepNow, date, domain.OpeningTime, appts)
	if !found || got != 11*60 {
		t.Fatalf("got (%v, %v), want (11:00, true)", got, found)
	}
}
