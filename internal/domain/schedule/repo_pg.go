package schedule

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const scheduleColumns = `id, doctor_id, day, start_time, end_time, activity_type`

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) Create(ctx context.Context, s *Schedule) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctor_schedules (doctor_id, day, start_time, end_time, activity_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.DoctorID, s.Day, s.StartTime, s.EndTime, s.ActivityType,
	).Scan(&s.ID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM doctor_schedules WHERE id = $1`, id))
}

func (r *pgRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]*Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM doctor_schedules WHERE doctor_id = $1 ORDER BY id`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Schedule
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *pgRepo) Update(ctx context.Context, id int64, patch Patch) (*Schedule, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE doctor_schedules SET
			doctor_id = COALESCE($2, doctor_id),
			day = COALESCE($3, day),
			start_time = COALESCE($4, start_time),
			end_time = COALESCE($5, end_time),
			activity_type = COALESCE($6, activity_type)
		WHERE id = $1
		RETURNING `+scheduleColumns,
		id, patch.DoctorID, patch.Day, patch.StartTime, patch.EndTime, patch.ActivityType))
}

func (r *pgRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctor_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pgRepo) scan(row rowScanner) (*Schedule, error) {
	s := &Schedule{}
	err := row.Scan(&s.ID, &s.DoctorID, &s.Day, &s.StartTime, &s.EndTime, &s.ActivityType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
