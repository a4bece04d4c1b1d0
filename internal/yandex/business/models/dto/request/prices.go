package request

const CurrencyRUR = "RUR"

type Price struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type OfferPrice struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
}

type PricesUpdate struct {
	Offers []OfferPrice `json:"offers"`
}
