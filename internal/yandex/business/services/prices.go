package services

import (
	"context"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/internal/core/transform"
	"gomarket_sync/internal/core/upload"
	"gomarket_sync/internal/yandex/business/models/dto/request"
)

func CreatePrices(records []models.SupplierStockRecord, offers *transform.OfferSet) ([]request.OfferPrice, error) {
	levels, err := transform.MatchPrices(records, offers)
	if err != nil {
		return nil, err
	}

	prices := make([]request.OfferPrice, len(levels))
	for i, level := range levels {
		prices[i] = request.OfferPrice{
			ID:    level.OfferID,
			Price: request.Price{Value: level.Value, CurrencyID: request.CurrencyRUR},
		}
	}
	return prices, nil
}

func (s *Service) UpdatePrices(ctx context.Context, prices []request.OfferPrice) error {
	batches, err := upload.InBatches(ctx, prices, s.priceBatchSize, func(ctx context.Context, batch []request.OfferPrice) error {
		return s.client.UpdatePrices(ctx, s.campaign.CampaignID, batch)
	})
	s.log.Log("Sent %d price batches", batches)
	return err
}

func (s *Service) UploadPrices(ctx context.Context, records []models.SupplierStockRecord) ([]request.OfferPrice, error) {
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
