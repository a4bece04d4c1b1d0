package response

const StatusOK = "OK"

// Status приходит в ответ на запросы обновления остатков и цен.
type Status struct {
	Status string `json:"status"`
}
