package services

import (
	"context"

	"gomarket_sync/internal/core/models"
)

// SupplierAdapter отдает остатки поставщика.
type SupplierAdapter interface {
	DownloadStock(ctx context.Context) ([]models.SupplierStockRecord, error)
}
