package services

import (
	"context"
	"fmt"
)

// GetOfferIDs выгружает все артикулы магазина, листая список товаров по last_id,
// пока число полученных товаров не сравняется с total.
func (s *Service) GetOfferIDs(ctx context.Context) ([]string, error) {
	var (
		lastID   string
		offerIDs []string
	)

	for page := 1; ; page++ {
		result, err := s.client.ProductList(ctx, lastID, s.pageLimit)
		if err != nil {
			return nil, fmt.Errorf("product list page %d: %w", page, err)
		}

		for _, item := range result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}

		if len(offerIDs) >= result.Total || len(result.Items) == 0 || result.LastID == "" {
			break
		}
		lastID = result.LastID
	}

	s.log.Log("Got %d offer ids", len(offerIDs))
	return offerIDs, nil
}
