package request

type Stock struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type StocksImport struct {
	Stocks []Stock `json:"stocks"`
}
