package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"calbook/internal/domain"
	"calbook/internal/store"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestPostgresIntegration_AppointmentLifecycle(t *testing.T) {
	databaseURL := strings.TrimSpace(os.Getenv("CALBOOK_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("CALBOOK_TEST_DATABASE_URL not set")
	}

	db, err := Open(databaseURL, PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})

	ctx := context.Background()
	schema := "calbook_test_" + randomHex(t, 8)
	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		t.Fatalf("create schema error: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = db.ExecContext(cleanupCtx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
	})
	// MaxOpenConns is 1, so the session-level search_path sticks.
	if _, err := db.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s, public", schema)); err != nil {
		t.Fatalf("set search_path error: %v", err)
	}

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	now := time.Date(2026, 6, 10, 10, 15, 0, 0, time.UTC)
	repo := NewAppointmentRepo(db, fixedClock{now: now})
	date := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, domain.Appointment{Date: date, Start: 10 * 60, End: 10*60 + 30})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected assigned id")
	}

	_, err = repo.Create(ctx, domain.Appointment{Date: date, Start: 10*60 + 15, End: 10*60 + 45})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlap create error = %v, want %v", err, store.ErrConflict)
	}

	avail, err := repo.IsSlotAvailable(ctx, date, 10*60, 10*60+30)
	if err != nil {
		t.Fatalf("IsSlotAvailable error: %v", err)
	}
	if avail {
		t.Fatalf("booked slot reported available")
	}
	avail, err = repo.IsSlotAvailable(ctx, date, 11*60, 11*60+30)
	if err != nil {
		t.Fatalf("IsSlotAvailable error: %v", err)
	}
	if !avail {
		t.Fatalf("free slot reported unavailable")
	}

	found, err := repo.FindByDateAndStart(ctx, date, 10*60)
	if err != nil {
		t.Fatalf("FindByDateAndStart error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("found id = %s, want %s", found.ID, created.ID)
	}
	if _, err := repo.FindByDateAndStart(ctx, date, 12*60); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("missing lookup error = %v, want %v", err, store.ErrNotFound)
	}

	slot, ok, err := repo.FindNextAvailableSlot(ctx, date, domain.OpeningTime)
	if err != nil {
		t.Fatalf("FindNextAvailableSlot error: %v", err)
	}
	if !ok || slot != domain.OpeningTime {
		t.Fatalf("next slot = (%v, %v), want (09:00, true)", slot, ok)
	}

	if err := repo.Delete(ctx, created); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(ctx, created); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, store.ErrNotFound)
	}
}

func randomHex(t *testing.T, n int) string {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}
