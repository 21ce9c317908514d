package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, password, email, full_name, role, specialization, contact_number, address, created_at`

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func (r *pgRepo) Create(ctx context.Context, u *User) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password, email, full_name, role, specialization, contact_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		u.Username, u.Password, u.Email, u.FullName, u.Role,
		u.Specialization, u.ContactNumber, u.Address,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *pgRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 ORDER BY id LIMIT 1`, username))
}

func (r *pgRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 ORDER BY id LIMIT 1`, email))
}

func (r *pgRepo) ListByRole(ctx context.Context, role Role) ([]*User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *pgRepo) Update(ctx context.Context, id int64, patch Patch) (*User, error) {
	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE users SET
			email = COALESCE($2, email),
			full_name = COALESCE($3, full_name),
			specialization = COALESCE($4, specialization),
			contact_number = COALESCE($5, contact_number),
			address = COALESCE($6, address)
		WHERE id = $1
		RETURNING `+userColumns,
		id, patch.Email, patch.FullName, patch.Specialization, patch.ContactNumber, patch.Address))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pgRepo) scan(row rowScanner) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.FullName,
		&u.Role, &u.Specialization, &u.ContactNumber, &u.Address, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *pgRepo) scanRow(rows pgx.Rows) (*User, error) {
	return r.scan(rows)
}
