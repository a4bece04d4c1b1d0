package services

import (
	"context"
	"fmt"
)

// GetOfferIDs собирает shopSku всех товаров кампании, пока API отдает nextPageToken.
func (s *Service) GetOfferIDs(ctx context.Context) ([]string, error) {
	var (
		pageToken string
		offerIDs  []string
	)

	for page := 1; ; page++ {
		result, err := s.client.OfferMappingEntries(ctx, s.campaign.CampaignID, pageToken, s.pageLimit)
		if err != nil {
			return nil, fmt.Errorf("offer mapping entries page %d: %w", page, err)
		}

		for _, entry := range result.OfferMappingEntries {
			offerIDs = append(offerIDs, entry.Offer.ShopSku)
		}

		pageToken = result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}

	s.log.Log("Got %d offer ids", len(offerIDs))
	return offerIDs, nil
}
