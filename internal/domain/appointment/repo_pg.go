package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const apptColumns = `id, patient_id, doctor_id, appointment_date, duration, status, type, notes`

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, duration, status, type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.AppointmentDate, a.Duration, a.Status, a.Type, a.Notes,
	).Scan(&a.ID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+apptColumns+` FROM appointments WHERE id = $1`, id))
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return r.list(ctx,
		`SELECT `+apptColumns+` FROM appointments WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *pgRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	return r.list(ctx,
		`SELECT `+apptColumns+` FROM appointments WHERE doctor_id = $1 ORDER BY id`, doctorID)
}

func (r *pgRepo) ListByDay(ctx context.Context, day time.Time) ([]*Appointment, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	return r.list(ctx,
		`SELECT `+apptColumns+` FROM appointments WHERE appointment_date >= $1 AND appointment_date < $2 ORDER BY id`,
		start, end)
}

func (r *pgRepo) Update(ctx context.Context, id int64, patch Patch) (*Appointment, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE appointments SET
			patient_id = COALESCE($2, patient_id),
			doctor_id = COALESCE($3, doctor_id),
			appointment_date = COALESCE($4, appointment_date),
			duration = COALESCE($5, duration),
			status = COALESCE($6, status),
			type = COALESCE($7, type),
			notes = COALESCE($8, notes)
		WHERE id = $1
		RETURNING `+apptColumns,
		id, patch.PatientID, patch.DoctorID, patch.AppointmentDate,
		patch.Duration, patch.Status, patch.Type, patch.Notes))
}

func (r *pgRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepo) list(ctx context.Context, query string, args ...any) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Appointment
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pgRepo) scan(row rowScanner) (*Appointment, error) {
	a := &Appointment{}
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate,
		&a.Duration, &a.Status, &a.Type, &a.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
