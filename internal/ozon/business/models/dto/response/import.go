package response

type ImportError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ImportItem struct {
	ProductID int64         `json:"product_id"`
	OfferID   string        `json:"offer_id"`
	Updated   bool          `json:"updated"`
	Errors    []ImportError `json:"errors"`
}

// Import приходит в ответ на /v1/product/import/stocks и /v1/product/import/prices.
type Import struct {
	Result []ImportItem `json:"result"`
}

func (r Import) Rejected() []ImportItem {
	var rejected []ImportItem
	for _, item := range r.Result {
		if !item.Updated || len(item.Errors) > 0 {
			rejected = append(rejected, item)
		}
	}
	return rejected
}
