package prescription

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rxColumns = `id, patient_id, doctor_id, prescription_date, status, notes, file_data, file_name`

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) Create(ctx context.Context, p *Prescription) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (patient_id, doctor_id, prescription_date, status, notes, file_data, file_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		p.PatientID, p.DoctorID, p.PrescriptionDate, p.Status, p.Notes, p.FileData, p.FileName,
	).Scan(&p.ID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Prescription, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+rxColumns+` FROM prescriptions WHERE id = $1`, id))
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID int64) ([]*Prescription, error) {
	return r.list(ctx,
		`SELECT `+rxColumns+` FROM prescriptions WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *pgRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]*Prescription, error) {
	return r.list(ctx,
		`SELECT `+rxColumns+` FROM prescriptions WHERE doctor_id = $1 ORDER BY id`, doctorID)
}

func (r *pgRepo) Update(ctx context.Context, id int64, patch Patch) (*Prescription, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE prescriptions SET
			patient_id = COALESCE($2, patient_id),
			prescription_date = COALESCE($3, prescription_date),
			status = COALESCE($4, status),
			notes = COALESCE($5, notes),
			file_data = COALESCE($6, file_data),
			file_name = COALESCE($7, file_name)
		WHERE id = $1
		RETURNING `+rxColumns,
		id, patch.PatientID, patch.PrescriptionDate, patch.Status,
		patch.Notes, patch.FileData, patch.FileName))
}

func (r *pgRepo) list(ctx context.Context, query string, args ...any) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Prescription
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pgRepo) scan(row rowScanner) (*Prescription, error) {
	p := &Prescription{}
	err := row.Scan(&p.ID, &p.PatientID, &p.DoctorID, &p.PrescriptionDate,
		&p.Status, &p.Notes, &p.FileData, &p.FileName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
