package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gomarket_sync/internal/reports/models"
)

type ReportRepository interface {
	Save(ctx context.Context, report models.SyncReport) error
	ByRun(ctx context.Context, runID uuid.UUID) ([]models.SyncReport, error)
}

type PostgresReportRepository struct {
	db *sqlx.DB
}

func NewPostgresReportRepository(db *sqlx.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) Save(ctx context.Context, report models.SyncReport) error {
	query := `
		INSERT INTO sync.reports (report_id, run_id, marketplace, target, offers, stocks,
		                          non_empty_stocks, prices, error_kind, error_message, started_at, finished_at)
		VALUES (:report_id, :run_id, :marketplace, :target, :offers, :stocks,
		        :non_empty_stocks, :prices, :error_kind, :error_message, :started_at, :finished_at)`

	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("saving report %s/%s: %w", report.Marketplace, report.Target, err)
	}
	return nil
}

func (r *PostgresReportRepository) ByRun(ctx context.Context, runID uuid.UUID) ([]models.SyncReport, error) {
	query := `
		SELECT report_id, run_id, marketplace, target, offers, stocks, non_empty_stocks,
		       prices, error_kind, error_message, started_at, finished_at
		FROM sync.reports
		WHERE run_id = $1
		ORDER BY started_at`

	var reports []models.SyncReport
	if err := r.db.SelectContext(ctx, &reports, query, runID); err != nil {
		return nil, fmt.Errorf("loading reports of run %s: %w", runID, err)
	}
	return reports, nil
}
