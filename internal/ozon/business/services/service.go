package services

import (
	"context"
	"fmt"
	"time"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/internal/ozon/business/models/dto/response"
	"gomarket_sync/metrics"
	"gomarket_sync/pkg/logger"
)

const Marketplace = "ozon"

type Config struct {
	StockBatchSize int
	PriceBatchSize int
	PageLimit      int
}

// Service синхронизирует остатки и цены одного магазина Ozon.
type Service struct {
	client         *Client
	log            logger.Logger
	stockBatchSize int
	priceBatchSize int
	pageLimit      int
}

func NewService(client *Client, log logger.Logger, cfg Config) *Service {
	return &Service{
		client:         client,
		log:            log,
		stockBatchSize: cfg.StockBatchSize,
		priceBatchSize: cfg.PriceBatchSize,
		pageLimit:      cfg.PageLimit,
	}
}

func (s *Service) Name() string {
	return Marketplace
}

// Sync: артикулы -> остатки -> цены. Артикулы запрашиваются один раз на цель.
func (s *Service) Sync(ctx context.Context, records []models.SupplierStockRecord) (models.SyncResult, error) {
	start := time.Now()
	result := models.SyncResult{Marketplace: Marketplace, Target: Marketplace}

	offerIDs, err := s.GetOfferIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("listing offers: %w", err)
	}
	offers := transform.NewOfferSet(offerIDs)
	result.Offers = offers.Len()

	stocks, err := CreateStocks(records, offers)
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

func (s *Service) logRejected(items []response.ImportItem) {
	for _, item := range items {
		s.log.Warn("Offer %s was not updated: %v", item.OfferID, item.Errors)
	}
}
