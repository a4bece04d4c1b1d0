package services

import (
	"context"
	"fmt"
	"time"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/metrics"
	"gomarket_sync/pkg/logger"
)

const Marketplace = "yandex"

// Campaign описывает кампанию (FBS, DBS) и ее склад.
type Campaign struct {
	Name        string
	CampaignID  string
	WarehouseID int64
}

type Config struct {
	StockBatchSize int
	PriceBatchSize int
	PageLimit      int
}

// Service синхронизирует одну кампанию Маркета.
type Service struct {
	client         *Client
	log            logger.Logger
	campaign       Campaign
	stockBatchSize int
	priceBatchSize int
	pageLimit      int
	now            func() time.Time
}

func NewService(client *Client, log logger.Logger, campaign Campaign, cfg Config) *Service {
	return &Service{
		client:         client,
		log:            log,
		campaign:       campaign,
		stockBatchSize: cfg.StockBatchSize,
		priceBatchSize: cfg.PriceBatchSize,
		pageLimit:      cfg.PageLimit,
		now:            time.Now,
	}
}

func (s *Service) Name() string {
	return Marketplace + "/" + s.campaign.Name
}

func (s *Service) Sync(ctx context.Context, records []models.SupplierStockRecord) (models.SyncResult, error) {
	start := time.Now()
	result := models.SyncResult{Marketplace: Marketplace, Target: s.campaign.Name}

	offerIDs, err := s.GetOfferIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("listing offers: %w", err)
	}
	offers := transform.NewOfferSet(offerIDs)
	result.Offers = offers.Len()

	stocks, err := CreateStocks(records, offers, s.campaign.WarehouseID, s.now())
	if err != nil {
		return result, fmt.Errorf("creating stocks: %w", err)
	}
	if err := s.UpdateStocks(ctx, stocks); err != nil {
		return result, fmt.Errorf("updating stocks: %w", err)
	}
	result.Stocks = len(stocks)
	result.NonEmptyStocks = len(nonEmpty(stocks))
	metrics.RecordUploaded(Marketplace, "stocks", len(stocks))

	prices, err := CreatePrices(records, offers)
	if err != nil {
		return result, fmt.Errorf("creating prices: %w", err)
	}
	if err := s.UpdatePrices(ctx, prices); err != nil {
		return result, fmt.Errorf("updating prices: %w", err)
	}
	result.Prices = len(prices)
	metrics.RecordUploaded(Marketplace, "prices", len(prices))

	result.Duration = time.Since(start)
	return result, nil
}
