package services

import (
	"context"
	"strconv"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/internal/core/upload"
	"gomarket_sync/internal/ozon/business/models/dto/request"
)

func CreatePrices(records []models.SupplierStockRecord, offers *transform.OfferSet) ([]request.Price, error) {
	levels, err := transform.MatchPrices(records, offers)
	if err != nil {
		return nil, err
	}

	prices := make([]request.Price, len(levels))
	for i, level := range levels {
		prices[i] = request.Price{
			AutoActionEnabled: request.AutoActionUnknown,
			CurrencyCode:      request.CurrencyRUB,
			OfferID:           level.OfferID,
			OldPrice:          "0",
			Price:             strconv.Itoa(level.Value),
		}
	}
	return prices, nil
}

func (s *Service) UpdatePrices(ctx context.Context, prices []request.Price) error {
	batches, err := upload.InBatches(ctx, prices, s.priceBatchSize, func(ctx context.Context, batch []request.Price) error {
		resp, err := s.client.ImportPrices(ctx, batch)
		if err != nil {
			return err
		}
		s.logRejected(resp.Rejected())
		return nil
	})
	s.log.Log("Sent %d price batches", batches)
	return err
}

func (s *Service) UploadPrices(ctx context.Context, records []models.SupplierStockRecord) ([]request.Price, error) {
	offerIDs, err := s.GetOfferIDs(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := CreatePrices(records, transform.NewOfferSet(offerIDs))
	if err != nil {
		return nil, err
	}
	if err := s.UpdatePrices(ctx, prices); err != nil {
		return nil, err
	}
	return prices, nil
}
