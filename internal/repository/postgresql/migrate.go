package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
)

// Uniqueness constraints are named so that conflict errors can be
// disambiguated from the insert's unique-violation alone. The storage
// layer is the authority for these invariants; application-level
// existence checks only order the error messages.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		employee_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		department TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT employees_employee_id_key UNIQUE (employee_id),
		CONSTRAINT employees_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT attendance_records_employee_id_date_key UNIQUE (employee_id, date)
	)`,
}

// Migrate creates the schema if it does not exist. It is idempotent and
// must run once from the process entry point before requests are served.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
