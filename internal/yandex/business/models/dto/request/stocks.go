package request

// StockTypeFit обозначает годный к продаже товар.
const StockTypeFit = "FIT"

type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type SkuStock struct {
	Sku         string      `json:"sku"`
	WarehouseID int64       `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

// Count возвращает остаток FIT (в запросе он всегда один).
func (s SkuStock) Count() int {
	total := 0
	for _, item := range s.Items {
		total += item.Count
	}
	return total
}

type StocksUpdate struct {
	Skus []SkuStock `json:"skus"`
}
