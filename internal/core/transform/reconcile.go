package transform

import (
	"fmt"
	"strings"

	"gomarket_sync/internal/core/models"
)

// StockLevel хранит остаток по артикулу площадки, общий для всех площадок.
type StockLevel struct {
	OfferID string
	Count   int
}

// PriceLevel хранит цену по артикулу площадки в рублях, без копеек.
type PriceLevel struct {
	OfferID string
	Value   int
}

// ReconcileStocks сопоставляет остатки поставщика с артикулами площадки.
// Каждый артикул площадки попадает в результат ровно один раз: сначала найденные
// у поставщика (в порядке файла), затем остальные с нулевым остатком.
func ReconcileStocks(records []models.SupplierStockRecord, offers *OfferSet) ([]StockLevel, error) {
	remaining := offers.Remaining()
	stocks := make([]StockLevel, 0, offers.Len())

	for _, record := range records {
		code := strings.TrimSpace(record.Code)
		if !remaining.Match(code) {
			continue
		}
		count, err := ParseQuantity(record.Quantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", code, err)
		}
		stocks = append(stocks, StockLevel{OfferID: code, Count: count})
	}

	for _, offerID := range remaining.Unmatched() {
		stocks = append(stocks, StockLevel{OfferID: offerID, Count: 0})
	}
	return stocks, nil
}

// MatchPrices возвращает цены для артикулов, известных площадке.
func MatchPrices(records []models.SupplierStockRecord, offers *OfferSet) ([]PriceLevel, error) {
	seen := make(map[string]struct{})
	var prices []PriceLevel

	for _, record := range records {
		code := strings.TrimSpace(record.Code)
		if !offers.Contains(code) {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		value, err := ParsePrice(record.Price)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", code, err)
		}
		prices = append(prices, PriceLevel{OfferID: code, Value: value})
	}
	return prices, nil
}

// NonEmpty отбирает записи с ненулевым остатком, count достает остаток из записи.
func NonEmpty[T any](items []T, count func(T) int) []T {
	var result []T
	for _, item := range items {
		if count(item) != 0 {
			result = append(result, item)
		}
	}
	return result
}
