package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gomarket_sync/internal/yandex/business/models/dto/request"
	"gomarket_sync/internal/yandex/business/models/dto/response"
	"gomarket_sync/pkg/clients"
)

// Client обращается к Partner API Яндекс.Маркета.
type Client struct {
	*clients.BaseClient
}

func NewClient(base *clients.BaseClient) *Client {
	return &Client{BaseClient: base}
}

func (c *Client) OfferMappingEntries(ctx context.Context, campaignID, pageToken string, limit int) (*response.OfferMappingResult, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}

	var resp response.OfferMappingEntries
	endpoint := fmt.Sprintf("/campaigns/%s/offer-mapping-entries", campaignID)
	if err := c.DoRequest(ctx, http.MethodGet, endpoint, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) UpdateStocks(ctx context.Context, campaignID string, skus []request.SkuStock) error {
	endpoint := fmt.Sprintf("/campaigns/%s/offers/stocks", campaignID)
	var resp response.Status
	if err := c.DoRequest(ctx, http.MethodPut, endpoint, nil, request.StocksUpdate{Skus: skus}, &resp); err != nil {
		return err
	}
	return checkStatus(endpoint, resp)
}

func (c *Client) UpdatePrices(ctx context.Context, campaignID string, offers []request.OfferPrice) error {
	endpoint := fmt.Sprintf("/campaigns/%s/offer-prices/updates", campaignID)
	var resp response.Status
	if err := c.DoRequest(ctx, http.MethodPost, endpoint, nil, request.PricesUpdate{Offers: offers}, &resp); err != nil {
		return err
	}
	return checkStatus(endpoint, resp)
}

func checkStatus(endpoint string, resp response.Status) error {
	if resp.Status != "" && resp.Status != response.StatusOK {
		return fmt.Errorf("%s: status %s", endpoint, resp.Status)
	}
	return nil
}
