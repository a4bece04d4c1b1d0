package request

const (
	AutoActionUnknown = "UNKNOWN"
	CurrencyRUB       = "RUB"
)

// Price задает цену товара. Ozon принимает цены строками.
type Price struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type PricesImport struct {
	Prices []Price `json:"prices"`
}
