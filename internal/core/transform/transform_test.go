package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket_sync/internal/core/models"
)

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		">10": 100,
		"1":   0,
		"0":   0,
		"2":   2,
		" 7 ": 7,
	}
	for in, want := range cases {
		got, err := ParseQuantity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseQuantity("много")
	assert.Error(t, err)
}

func TestPriceConversion(t *testing.T) {
	assert.Equal(t, "5990", PriceConversion("5'990.00 руб."))
	assert.Equal(t, "5990", PriceConversion("5990"))
	assert.Equal(t, "12500", PriceConversion("12 500.50"))
	assert.Equal(t, "", PriceConversion(".99"))
}

func TestParsePrice(t *testing.T) {
	v, err := ParsePrice("5990")
	require.NoError(t, err)
	assert.Equal(t, 5990, v)

	v, err = ParsePrice("5'990.00 руб.")
	require.NoError(t, err)
	assert.Equal(t, 5990, v)

	_, err = ParsePrice("руб.")
	assert.Error(t, err)
}

func TestDivide(t *testing.T) {
	items := make([]int, 2500)
	chunks := Divide(items, 1000)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[1], 1000)
	assert.Len(t, chunks[2], 500)

	assert.Empty(t, Divide([]int{}, 100))
	assert.Len(t, Divide([]int{1, 2, 3}, 0), 1)
}

func TestReconcileStocks_EndToEnd(t *testing.T) {
	records := []models.SupplierStockRecord{{Code: "A1", Quantity: ">10", Price: "100.00"}}
	offers := NewOfferSet([]string{"A1", "B2"})

	stocks, err := ReconcileStocks(records, offers)
	require.NoError(t, err)

	assert.Equal(t, []StockLevel{{OfferID: "A1", Count: 100}, {OfferID: "B2", Count: 0}}, stocks)
	assert.Equal(t, 2, offers.Len(), "known offers must not be consumed")
}

func TestReconcileStocks_EveryOfferExactlyOnce(t *testing.T) {
	records := []models.SupplierStockRecord{
		{Code: "C3", Quantity: "1"},
		{Code: "X9", Quantity: "oops"},
		{Code: "A1", Quantity: "5"},
		{Code: "A1", Quantity: "7"},
	}
	offers := NewOfferSet([]string{"A1", "B2", "C3", "D4"})

	stocks, err := ReconcileStocks(records, offers)
	require.NoError(t, err)

	counts := map[string]int{}
	seen := map[string]int{}
	for _, s := range stocks {
		counts[s.OfferID] = s.Count
		seen[s.OfferID]++
	}
	assert.Equal(t, map[string]int{"A1": 1, "B2": 1, "C3": 1, "D4": 1}, seen)
	assert.Equal(t, 5, counts["A1"])
	assert.Equal(t, 0, counts["C3"])
	assert.Equal(t, 0, counts["B2"])
	assert.Equal(t, []StockLevel{{OfferID: "A1", Count: 5}}, NonEmpty(stocks, func(s StockLevel) int { return s.Count }))
}

func TestReconcileStocks_MalformedQuantity(t *testing.T) {
	records := []models.SupplierStockRecord{{Code: "A1", Quantity: "n/a"}}

	_, err := ReconcileStocks(records, NewOfferSet([]string{"A1"}))
	assert.ErrorContains(t, err, "A1")
}

func TestMatchPrices_UsesFullOfferSet(t *testing.T) {
	records := []models.SupplierStockRecord{
		{Code: "A1", Quantity: ">10", Price: "5'990.00 руб."},
		{Code: "Z0", Quantity: "3", Price: "100"},
	}
	offers := NewOfferSet([]string{"A1", "B2"})

	_, err := ReconcileStocks(records, offers)
	require.NoError(t, err)

	prices, err := MatchPrices(records, offers)
	require.NoError(t, err)
	assert.Equal(t, []PriceLevel{{OfferID: "A1", Value: 5990}}, prices)
}

func TestOfferSet_DeduplicatesKeepingOrder(t *testing.T) {
	s := NewOfferSet([]string{"b", "a", "b"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b", "a"}, s.Remaining().Unmatched())

	r := s.Remaining()
	assert.True(t, r.Match("a"))
	assert.False(t, r.Match("a"))
	assert.False(t, r.Match("zzz"))
	assert.Equal(t, []string{"b"}, r.Unmatched())
}
