package reports

import (
	"database/sql"
	"fmt"

	"gomarket_sync/pkg/dbconnect/migration"
)

type MigrationsSchema struct{}

func (m *MigrationsSchema) UpMigration(db *sql.DB) error {
	_, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS migrations;`)
	if err != nil {
		return fmt.Errorf("failed to create migrations schema: %w", err)
	}
	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS migrations.migrations (
            id SERIAL PRIMARY KEY,
            time TIMESTAMP NOT NULL,
            name VARCHAR(255) UNIQUE NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

type CreateSyncSchema struct{}

func (m *CreateSyncSchema) UpMigration(db *sql.DB) error {
	_, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS sync;`)
	if err != nil {
		return fmt.Errorf("failed to create schema sync: %w", err)
	}
	return nil
}

// CreateSyncReportsTable создает историю запусков синхронизации, по строке на цель.
type CreateSyncReportsTable struct{}

func (m *CreateSyncReportsTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, "sync.reports"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS sync.reports (
		report_id UUID PRIMARY KEY,
		run_id UUID NOT NULL,
		marketplace VARCHAR(32) NOT NULL,
		target VARCHAR(64) NOT NULL,
		offers INT NOT NULL DEFAULT 0,
		stocks INT NOT NULL DEFAULT 0,
		non_empty_stocks INT NOT NULL DEFAULT 0,
		prices INT NOT NULL DEFAULT 0,
		error_kind VARCHAR(32),
		error_message TEXT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sync_reports_run_id_idx ON sync.reports(run_id);`
	return executeAndMarkMigration(db, query, "sync.reports")
}

func checkAndSkipMigration(db *sql.DB, migrationName string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", migrationName).Scan(&migrationExists)
	if err != nil {
		return migrationExists, fmt.Errorf("failed to check migration status: %w", err)
	}
	return migrationExists, nil
}

func executeAndMarkMigration(db *sql.DB, query string, migrationName string) error {
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to execute migration '%s': %w", migrationName, err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", migrationName)
	if err != nil {
		return fmt.Errorf("failed to mark migration '%s' as complete: %w", migrationName, err)
	}
	return nil
}

// All возвращает миграции в порядке применения.
func All() []migration.MigrationInterface {
	return []migration.MigrationInterface{
		&MigrationsSchema{},
		&CreateSyncSchema{},
		&CreateSyncReportsTable{},
	}
}
