package services

import (
	"context"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/internal/core/upload"
	"gomarket_sync/internal/ozon/business/models/dto/request"
)

func CreateStocks(records []models.SupplierStockRecord, offers *transform.OfferSet) ([]request.Stock, error) {
	levels, err := transform.ReconcileStocks(records, offers)
	if err != nil {
		return nil, err
	}

	stocks := make([]request.Stock, len(levels))
	for i, level := range levels {
		stocks[i] = request.Stock{OfferID: level.OfferID, Stock: level.Count}
	}
	return stocks, nil
}

// UpdateStocks отправляет остатки пачками по stockBatchSize.
func (s *Service) UpdateStocks(ctx context.Context, stocks []request.Stock) error {
	batches, err := upload.InBatches(ctx, stocks, s.stockBatchSize, func(ctx context.Context, batch []request.Stock) error {
		resp, err := s.client.ImportStocks(ctx, batch)
		if err != nil {
			return err
		}
		s.logRejected(resp.Rejected())
		return nil
	})
	s.log.Log("Sent %d stock batches", batches)
	return err
}

// UploadStocks заново получает артикулы и выгружает остатки.
// Возвращает ненулевые остатки и полный список.
func (s *Service) UploadStocks(ctx context.Context, records []models.SupplierStockRecord) ([]request.Stock, []request.Stock, error) {
	offerIDs, err := s.GetOfferIDs(ctx)
	if err != nil {
		return nil, nil, err
	}

	stocks, err := CreateStocks(records, transform.NewOfferSet(offerIDs))
	if err != nil {
		return nil, nil, err
	}
	if err := s.UpdateStocks(ctx, stocks); err != nil {
		return nil, nil, err
	}
	return nonEmpty(stocks), stocks, nil
}

func nonEmpty(stocks []request.Stock) []request.Stock {
	return transform.NonEmpty(stocks, func(s request.Stock) int { return s.Stock })
}
