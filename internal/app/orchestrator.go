package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/services"
	reportmodels "gomarket_sync/internal/reports/models"
	"gomarket_sync/internal/reports/storage"
	"gomarket_sync/metrics"
	"gomarket_sync/pkg/errkind"
	"gomarket_sync/pkg/logger"
)

// Target представляет одну цель синхронизации: магазин Ozon или кампанию Маркета.
type Target interface {
	Name() string
	Sync(ctx context.Context, records []models.SupplierStockRecord) (models.SyncResult, error)
}

type RunSummary struct {
	RunID   uuid.UUID
	Results []models.SyncResult
	Failed  map[string]errkind.Kind
}

// Orchestrator скачивает остатки поставщика один раз и по очереди синхронизирует цели.
// Ошибка цели классифицируется, логируется и не мешает следующим целям; повторов нет.
type Orchestrator struct {
	supplier services.SupplierAdapter
	targets  []Target
	reports  storage.ReportRepository
	log      logger.Logger
	metrics  *metrics.SyncMetrics
}

func NewOrchestrator(supplier services.SupplierAdapter, targets []Target, reports storage.ReportRepository, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		supplier: supplier,
		targets:  targets,
		reports:  reports,
		log:      log,
		metrics:  &metrics.SyncMetrics{},
	}
}

func (o *Orchestrator) Run(ctx context.Context) RunSummary {
	summary := RunSummary{RunID: uuid.New(), Failed: map[string]errkind.Kind{}}
	log := o.log.With("run_id", summary.RunID.String())
	log.Log("Sync run %s started, %d targets", summary.RunID, len(o.targets))

	records, err := o.supplier.DownloadStock(ctx)
	if err != nil {
		summary.Failed["supplier"] = handleError(log, "supplier", "supplier", err)
		return summary
	}

	for _, target := range o.targets {
		if ctx.Err() != nil {
			log.Warn("Sync run %s interrupted: %v", summary.RunID, ctx.Err())
			break
		}

		started := time.Now()
		result, err := target.Sync(ctx, records)
		report := reportmodels.NewSyncReport(summary.RunID, result, started, time.Now())

		if err != nil {
			kind := handleError(log.With("target", target.Name()), target.Name(), result.Marketplace, err)
			summary.Failed[target.Name()] = kind
			report.SetError(kind.String(), err)
			o.metrics.TargetsFailed.Add(1)
		} else {
			log.Log("%s synced: offers=%d stocks=%d non-empty=%d prices=%d in %s",
				target.Name(), result.Offers, result.Stocks, result.NonEmptyStocks, result.Prices, result.Duration)
			summary.Results = append(summary.Results, result)
			o.metrics.TargetsSucceeded.Add(1)
			o.metrics.StocksUploaded.Add(int32(result.Stocks))
			o.metrics.PricesUploaded.Add(int32(result.Prices))
		}

		o.saveReport(ctx, log, report)
	}

	log.Log("Sync run %s finished: %d ok, %d failed, %d stocks, %d prices",
		summary.RunID, o.metrics.TargetsSucceeded.Load(), o.metrics.TargetsFailed.Load(),
		o.metrics.StocksUploaded.Load(), o.metrics.PricesUploaded.Load())
	return summary
}

// handleError классифицирует ошибку, пишет ее в лог по виду и считает в метриках.
func handleError(log logger.Logger, name, marketplace string, err error) errkind.Kind {
	kind := errkind.Classify(err)
	switch kind {
	case errkind.Timeout:
		log.Error("%s: request timed out: %v", name, err)
	case errkind.Connection:
		log.Error("%s: connection error: %v", name, err)
	default:
		log.Error("%s: sync failed: %v", name, err)
	}
	metrics.RecordSyncError(marketplace, kind.String())
	return kind
}

func (o *Orchestrator) saveReport(ctx context.Context, log logger.Logger, report reportmodels.SyncReport) {
	if o.reports == nil {
		return
	}
	if err := o.reports.Save(ctx, report); err != nil {
		log.Warn("Failed to save sync report: %v", err)
	}
}

func (o *Orchestrator) Metrics() *metrics.SyncMetrics {
	return o.metrics
}
