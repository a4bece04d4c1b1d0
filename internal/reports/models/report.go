package models

import (
	"time"

	"github.com/google/uuid"

	core "gomarket_sync/internal/core/models"
)

// SyncReport хранит строку истории синхронизации.
type SyncReport struct {
	ReportID       uuid.UUID `db:"report_id"`
	RunID          uuid.UUID `db:"run_id"`
	Marketplace    string    `db:"marketplace"`
	Target         string    `db:"target"`
	Offers         int       `db:"offers"`
	Stocks         int       `db:"stocks"`
	NonEmptyStocks int       `db:"non_empty_stocks"`
	Prices         int       `db:"prices"`
	ErrorKind      *string   `db:"error_kind"`
	ErrorMessage   *string   `db:"error_message"`
	StartedAt      time.Time `db:"started_at"`
	FinishedAt     time.Time `db:"finished_at"`
}

func NewSyncReport(runID uuid.UUID, result core.SyncResult, startedAt, finishedAt time.Time) SyncReport {
	return SyncReport{
		ReportID:       uuid.New(),
		RunID:          runID,
		Marketplace:    result.Marketplace,
		Target:         result.Target,
		Offers:         result.Offers,
		Stocks:         result.Stocks,
		NonEmptyStocks: result.NonEmptyStocks,
		Prices:         result.Prices,
		StartedAt:      startedAt.UTC(),
		FinishedAt:     finishedAt.UTC(),
	}
}

func (r *SyncReport) SetError(kind string, err error) {
	message := err.Error()
	r.ErrorKind = &kind
	r.ErrorMessage = &message
}

func (r SyncReport) Failed() bool {
	return r.ErrorKind != nil
}
