package timeworld

import (
	"fmt"
	"strings"

	"gomarket_sync/internal/core/models"
)

const (
	columnCode     = "Код"
	columnQuantity = "Количество"
	columnPrice    = "Цена"
)

type columnIndex struct {
	code, quantity, price int
}

func findColumns(row []string) (columnIndex, bool) {
	idx := columnIndex{code: -1, quantity: -1, price: -1}
	for i, cell := range row {
		switch strings.TrimSpace(cell) {
		case columnCode:
			idx.code = i
		case columnQuantity:
			idx.quantity = i
		case columnPrice:
			idx.price = i
		}
	}
	return idx, idx.code >= 0 && idx.quantity >= 0 && idx.price >= 0
}

// rowsToRecords ищет заголовок в строке headerRow (при неудаче ищет в первой
// подходящей строке) и превращает строки под ним в записи. Строки без кода пропускаются.
func rowsToRecords(rows [][]string, headerRow int) ([]models.SupplierStockRecord, error) {
	header := -1
	var idx columnIndex

	if headerRow >= 0 && headerRow < len(rows) {
		if found, ok := findColumns(rows[headerRow]); ok {
			header, idx = headerRow, found
		}
	}
	if header < 0 {
		for i, row := range rows {
			if found, ok := findColumns(row); ok {
				header, idx = i, found
				break
			}
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("header with columns %q, %q, %q not found", columnCode, columnQuantity, columnPrice)
	}

	var records []models.SupplierStockRecord
	for _, row := range rows[header+1:] {
		code := strings.TrimSpace(cell(row, idx.code))
		if code == "" {
			continue
		}
		records = append(records, models.SupplierStockRecord{
			Code:     code,
			Quantity: strings.TrimSpace(cell(row, idx.quantity)),
			Price:    strings.TrimSpace(cell(row, idx.price)),
		})
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
