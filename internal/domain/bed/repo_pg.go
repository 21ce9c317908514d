package bed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bedColumns = `id, bed_number, ward, status, patient_id`

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) Create(ctx context.Context, b *Bed) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO beds (bed_number, ward, status, patient_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		b.BedNumber, b.Ward, b.Status, b.PatientID,
	).Scan(&b.ID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Bed, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+bedColumns+` FROM beds WHERE id = $1`, id))
}

func (r *pgRepo) List(ctx context.Context) ([]*Bed, error) {
	return r.list(ctx, `SELECT `+bedColumns+` FROM beds ORDER BY id`)
}

func (r *pgRepo) ListByWard(ctx context.Context, ward Ward) ([]*Bed, error) {
	return r.list(ctx, `SELECT `+bedColumns+` FROM beds WHERE ward = $1 ORDER BY id`, ward)
}

func (r *pgRepo) ListByStatus(ctx context.Context, status Status) ([]*Bed, error) {
	return r.list(ctx, `SELECT `+bedColumns+` FROM beds WHERE status = $1 ORDER BY id`, status)
}

func (r *pgRepo) Update(ctx context.Context, id int64, patch Patch) (*Bed, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE beds SET
			bed_number = COALESCE($2, bed_number),
			ward = COALESCE($3, ward),
			status = COALESCE($4, status),
			patient_id = COALESCE($5, patient_id)
		WHERE id = $1
		RETURNING `+bedColumns,
		id, patch.BedNumber, patch.Ward, patch.Status, patch.PatientID))
}

func (r *pgRepo) list(ctx context.Context, query string, args ...any) ([]*Bed, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bed
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pgRepo) scan(row rowScanner) (*Bed, error) {
	b := &Bed{}
	err := row.Scan(&b.ID, &b.BedNumber, &b.Ward, &b.Status, &b.PatientID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
