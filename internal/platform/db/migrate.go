package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema when it does not exist. The schema is a set of
// flat record tables; foreign-key columns are informational and carry no
// constraints, matching the store's permissive write behavior.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			email TEXT NOT NULL,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			specialization TEXT,
			contact_number TEXT,
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			patient_id BIGINT NOT NULL,
			doctor_id BIGINT NOT NULL,
			appointment_date TIMESTAMPTZ NOT NULL,
			duration INT NOT NULL,
			status TEXT NOT NULL,
			type TEXT NOT NULL,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS beds (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			bed_number TEXT NOT NULL,
			ward TEXT NOT NULL,
			status TEXT NOT NULL,
			patient_id BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS prescriptions (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			patient_id BIGINT NOT NULL,
			doctor_id BIGINT NOT NULL,
			prescription_date TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			notes TEXT,
			file_data TEXT,
			file_name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS doctor_schedules (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			doctor_id BIGINT NOT NULL,
			day TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			activity_type TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
