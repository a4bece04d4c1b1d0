package models

// SupplierStockRecord хранит строку файла остатков поставщика.
// Quantity хранится как есть: поставщик пишет ">10" вместо точного числа.
type SupplierStockRecord struct {
	Code     string `json:"code"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}
