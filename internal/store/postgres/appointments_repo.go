package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"calbook/internal/clock"
	"calbook/internal/domain"
	"calbook/internal/store"
)

type AppointmentRepo struct {
	db    *bun.DB
	clock clock.Clock
}

func NewAppointmentRepo(db *bun.DB, clk clock.Clock) *AppointmentRepo {
	if clk == nil {
		clk = clock.System{}
	}
	return &AppointmentRepo{db: db, clock: clk}
}

func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:        appt.ID,
		Date:      domain.DateOnly(appt.Date),
		Start:     appt.Start,
		End:       appt.End,
		CreatedAt: appt.CreatedAt,
		UpdatedAt: appt.UpdatedAt,
	}

	_, err := r.db.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "appointments_no_overlap" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}

	return m, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, appt domain.Appointment) error {
	res, err := r.db.NewDelete().
		Model((*domain.Appointment)(nil)).
		Where("id = ?", appt.ID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) FindByDateAndStart(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.Appointment, error) {
	var m domain.Appointment
	err := r.db.NewSelect().
		Model(&m).
		Where("appointment_date = ?", domain.DateOnly(date)).
		Where("start_minutes = ?", start).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return m, nil
}

func (r *AppointmentRepo) IsSlotAvailable(ctx context.Context, date time.Time, start, end domain.TimeOfDay) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*domain.Appointment)(nil)).
		Where("appointment_date = ?", domain.DateOnly(date)).
		Where("(start_minutes <= ? AND end_minutes > ?) OR (start_minutes < ? AND end_minutes >= ?)",
			start, start, end, end).
		Exists(ctx)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (r *AppointmentRepo) FindNextAvailableSlot(ctx context.Context, date time.Time, start domain.TimeOfDay) (domain.TimeOfDay, bool, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("appointment_date = ?", domain.DateOnly(date)).
		OrderExpr("start_minutes ASC").
		Scan(ctx)
	if err != nil {
		return 0, false, err
	}

	slot, found := store.NextFreeSlot(r.clock.Now(), date, start, rows)
	return slot, found, nil
}
