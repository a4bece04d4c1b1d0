package services

import (
	"context"
	"time"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/internal/core/upload"
	"gomarket_sync/internal/yandex/business/models/dto/request"
)

// CreateStocks формирует остатки склада. Все записи получают одну отметку updatedAt.
func CreateStocks(records []models.SupplierStockRecord, offers *transform.OfferSet, warehouseID int64, updatedAt time.Time) ([]request.SkuStock, error) {
	levels, err := transform.ReconcileStocks(records, offers)
	if err != nil {
		return nil, err
	}

	date := updatedAt.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05") + "Z"
	stocks := make([]request.SkuStock, len(levels))
	for i, level := range levels {
		stocks[i] = request.SkuStock{
			Sku:         level.OfferID,
			WarehouseID: warehouseID,
			Items: []request.StockItem{{
				Count:     level.Count,
				Type:      request.StockTypeFit,
				UpdatedAt: date,
			}},
		}
	}
	return stocks, nil
}

func (s *Service) UpdateStocks(ctx context.Context, stocks []request.SkuStock) error {
	batches, err := upload.InBatches(ctx, stocks, s.stockBatchSize, func(ctx context.Context, batch []request.SkuStock) error {
		return s.client.UpdateStocks(ctx, s.campaign.CampaignID, batch)
	})
	s.log.Log("Sent %d stock batches", batches)
	return err
}

// UploadStocks заново получает артикулы кампании и выгружает остатки.
// Возвращает ненулевые остатки и полный список.
func (s *Service) UploadStocks(ctx context.Context, records []models.SupplierStockRecord) ([]request.SkuStock, []request.SkuStock, error) {
	offerIDs, err := s.GetOfferIDs(ctx)
	if err != nil {
		return nil, nil, err
	}

	stocks, err := CreateStocks(records, transform.NewOfferSet(offerIDs), s.campaign.WarehouseID, s.now())
	if err != nil {
		return nil, nil, err
	}
	if err := s.UpdateStocks(ctx, stocks); err != nil {
		return nil, nil, err
	}
	return nonEmpty(stocks), stocks, nil
}

func nonEmpty(stocks []request.SkuStock) []request.SkuStock {
	return transform.NonEmpty(stocks, func(s request.SkuStock) int { return s.Count() })
}
