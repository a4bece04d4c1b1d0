package services

import (
	"context"
	"net/http"

	"gomarket_sync/internal/ozon/business/models/dto/request"
	"gomarket_sync/internal/ozon/business/models/dto/response"
	"gomarket_sync/pkg/clients"
)

const (
	productListEndpoint  = "/v2/product/list"
	importStocksEndpoint = "/v1/product/import/stocks"
	importPricesEndpoint = "/v1/product/import/prices"
)

// Client обращается к Ozon Seller API.
type Client struct {
	*clients.BaseClient
}

func NewClient(base *clients.BaseClient) *Client {
	return &Client{BaseClient: base}
}

func (c *Client) ProductList(ctx context.Context, lastID string, limit int) (*response.ProductListResult, error) {
	body := request.ProductList{
		Filter: request.Filter{Visibility: request.VisibilityAll},
		LastID: lastID,
		Limit:  limit,
	}

	var resp response.ProductList
	if err := c.DoRequest(ctx, http.MethodPost, productListEndpoint, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) ImportStocks(ctx context.Context, stocks []request.Stock) (*response.Import, error) {
	var resp response.Import
	err := c.DoRequest(ctx, http.MethodPost, importStocksEndpoint, nil, request.StocksImport{Stocks: stocks}, &resp)
	return &resp, err
}

func (c *Client) ImportPrices(ctx context.Context, prices []request.Price) (*response.Import, error) {
	var resp response.Import
	err := c.DoRequest(ctx, http.MethodPost, importPricesEndpoint, nil, request.PricesImport{Prices: prices}, &resp)
	return &resp, err
}
