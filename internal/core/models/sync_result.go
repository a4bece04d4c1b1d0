package models

import "time"

// SyncResult хранит итог синхронизации одной цели (аккаунт Ozon или кампания Маркета).
type SyncResult struct {
	Marketplace    string        `json:"marketplace" db:"marketplace"`
	Target         string        `json:"target" db:"target"`
	Offers         int           `json:"offers" db:"offers"`
	Stocks         int           `json:"stocks" db:"stocks"`
	NonEmptyStocks int           `json:"non_empty_stocks" db:"non_empty_stocks"`
	Prices         int           `json:"prices" db:"prices"`
	Duration       time.Duration `json:"duration" db:"-"`
}
