// Package postgres opens the database handle and bootstraps the schema.
// The handle is constructed here and passed explicitly to stores; nothing
// holds ambient process-wide database state.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // driver registration
)

// schema declares the two tables. The foreign key carries ON DELETE CASCADE
// as a defense-in-depth complement to the explicit application-level cascade
// in the store. No uniqueness constraint exists on (employee_id, date):
// multiple same-day records are an intentional part of the contract.
const schema = `
CREATE TABLE IF NOT EXISTS employees (
	employee_id TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	department  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
	id          BIGSERIAL PRIMARY KEY,
	employee_id TEXT NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
	date        DATE NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('Present', 'Absent'))
);

CREATE INDEX IF NOT EXISTS idx_attendance_employee_date ON attendance (employee_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date DESC);
CREATE INDEX IF NOT EXISTS idx_employees_department ON employees (department);
`

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables and indexes when they do not exist yet.
// Called once at startup, mirroring the original deployment model.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
