package clients

import (
	"net/http"
)

type AuthEngine interface {
	SetApiKey(request *http.Request)
}

// BearerAuth авторизует запросы к Яндекс.Маркету.
type BearerAuth struct {
	apiKey string
}

func (b *BearerAuth) SetApiKey(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+b.apiKey)
}

func NewBearerAuth(apiKey string) *BearerAuth {
	return &BearerAuth{apiKey: apiKey}
}

// ClientKeyAuth авторизует запросы к Ozon Seller API парой Client-Id / Api-Key.
type ClientKeyAuth struct {
	clientID string
	apiKey   string
}

func (c *ClientKeyAuth) SetApiKey(request *http.Request) {
	request.Header.Set("Client-Id", c.clientID)
	request.Header.Set("Api-Key", c.apiKey)
}

func NewClientKeyAuth(clientID, apiKey string) *ClientKeyAuth {
	return &ClientKeyAuth{clientID: clientID, apiKey: apiKey}
}
