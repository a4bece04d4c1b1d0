package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"gomarket_sync/config"
	ozon "gomarket_sync/internal/ozon/business/services"
	"gomarket_sync/internal/reports/storage"
	"gomarket_sync/internal/suppliers/timeworld"
	yandex "gomarket_sync/internal/yandex/business/services"
	"gomarket_sync/metrics"
	reportmigrations "gomarket_sync/migrations/reports"
	"gomarket_sync/pkg/clients"
	"gomarket_sync/pkg/dbconnect"
	"gomarket_sync/pkg/dbconnect/migration"
	"gomarket_sync/pkg/dbconnect/postgres"
	"gomarket_sync/pkg/logger"
)

// SyncServer собирает зависимости из конфигурации и выполняет один запуск синхронизации.
type SyncServer struct {
	cfg *config.AppConfig
	log *logger.BaseLogger
}

func NewSyncServer(cfg *config.AppConfig, log *logger.BaseLogger) *SyncServer {
	return &SyncServer{cfg: cfg, log: log}
}

func (s *SyncServer) Run(ctx context.Context) RunSummary {
	if s.cfg.MetricsAddr != "" {
		stop := s.serveMetrics()
		defer stop()
	}

	var reports storage.ReportRepository
	if s.cfg.Reports.Enabled {
		connector := postgres.NewPgConnector(s.cfg.Postgres, s.log.WithPrefix("[Postgres]"))
		defer connector.Close()

		repo, err := s.reportRepository(connector)
		if err != nil {
			s.log.Warn("Sync reports are disabled: %v", err)
		} else {
			reports = repo
		}
	}

	supplier := timeworld.NewAdapter(
		timeworld.NewHTTPFetcher(&http.Client{Timeout: 2 * time.Minute}),
		s.cfg.Supplier.URL,
		s.cfg.Supplier.HeaderRow,
		s.log.WithPrefix("[Timeworld]"),
	)

	targets := s.targets()
	if len(targets) == 0 {
		s.log.Warn("No marketplace credentials configured, nothing to sync")
	}

	return NewOrchestrator(supplier, targets, reports, s.log.WithPrefix("[Sync]")).Run(ctx)
}

func (s *SyncServer) targets() []Target {
	opts := clients.Options{
		Timeout:           s.cfg.HTTP.Timeout(),
		RequestsPerSecond: s.cfg.HTTP.RequestsPerSecond,
	}

	var targets []Target

	if s.cfg.Ozon.Enabled() {
		log := s.log.WithPrefix("[Ozon]")
		base := clients.NewBaseClient(s.cfg.Ozon.BaseURL, clients.NewClientKeyAuth(s.cfg.Ozon.ClientID, s.cfg.Ozon.SellerToken), log, opts)
		targets = append(targets, ozon.NewService(ozon.NewClient(base), log, ozon.Config{
			StockBatchSize: s.cfg.Ozon.StockBatchSize,
			PriceBatchSize: s.cfg.Ozon.PriceBatchSize,
			PageLimit:      s.cfg.Ozon.PageLimit,
		}))
	} else {
		s.log.Warn("Ozon is skipped: CLIENT_ID or SELLER_TOKEN is not set")
	}

	if s.cfg.Yandex.Enabled() {
		yandexCfg := yandex.Config{
			StockBatchSize: s.cfg.Yandex.StockBatchSize,
			PriceBatchSize: s.cfg.Yandex.PriceBatchSize,
			PageLimit:      s.cfg.Yandex.PageLimit,
		}
		for _, campaign := range s.cfg.Yandex.Campaigns {
			log := s.log.WithPrefix("[Yandex " + campaign.Name + "]")
			base := clients.NewBaseClient(s.cfg.Yandex.BaseURL, clients.NewBearerAuth(s.cfg.Yandex.Token), log, opts)
			targets = append(targets, yandex.NewService(yandex.NewClient(base), log, yandex.Campaign{
				Name:        campaign.Name,
				CampaignID:  campaign.CampaignID,
				WarehouseID: campaign.WarehouseID,
			}, yandexCfg))
		}
	} else {
		s.log.Warn("Yandex Market is skipped: MARKET_TOKEN or campaign ids are not set")
	}

	return targets
}

func (s *SyncServer) reportRepository(connector dbconnect.Database) (storage.ReportRepository, error) {
	db, err := connector.Connect()
	if err != nil {
		return nil, err
	}
	if err := migration.Apply(db, reportmigrations.All()...); err != nil {
		return nil, err
	}
	s.log.Log("Report migrations applied successfully")
	return storage.NewPostgresReportRepository(sqlx.NewDb(db, "postgres")), nil
}

func (s *SyncServer) serveMetrics() func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.MetricsHandler())
	srv := &http.Server{Addr: s.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Warn("Metrics server stopped: %v", err)
		}
	}()
	s.log.Log("Serving metrics on %s/metrics", s.cfg.MetricsAddr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
