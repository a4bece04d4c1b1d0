package request

const VisibilityAll = "ALL"

type Filter struct {
	Visibility string `json:"visibility"`
}

// ProductList задает тело запроса /v2/product/list. Пагинация по last_id.
type ProductList struct {
	Filter Filter `json:"filter"`
	LastID string `json:"last_id"`
	Limit  int    `json:"limit"`
}
