package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	quantityMany     = ">10"
	quantityReserved = "1"

	stockMany = 100
)

// ParseQuantity переводит количество из файла поставщика в остаток для площадки.
// Единичный остаток у поставщика зарезервирован, поэтому выгружается как 0.
func ParseQuantity(quantity string) (int, error) {
	quantity = strings.TrimSpace(quantity)
	switch quantity {
	case quantityMany:
		return stockMany, nil
	case quantityReserved:
		return 0, nil
	}

	stock, err := strconv.Atoi(quantity)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	return stock, nil
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// PriceConversion оставляет только цифры целой части цены: "5'990.00 руб." -> "5990".
func PriceConversion(price string) string {
	integerPart, _, _ := strings.Cut(price, ".")
	return nonDigits.ReplaceAllString(integerPart, "")
}

func ParsePrice(price string) (int, error) {
	digits := PriceConversion(price)
	if digits == "" {
		return 0, fmt.Errorf("price %q contains no digits", price)
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return value, nil
}
