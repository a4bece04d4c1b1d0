package response

type Paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type Offer struct {
	ShopSku string `json:"shopSku"`
}

type OfferMappingEntry struct {
	Offer Offer `json:"offer"`
}

type OfferMappingResult struct {
	Paging              Paging              `json:"paging"`
	OfferMappingEntries []OfferMappingEntry `json:"offerMappingEntries"`
}

type OfferMappingEntries struct {
	Result OfferMappingResult `json:"result"`
}
