package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, "2xx", classifyStatus(200))
	assert.Equal(t, "4xx", classifyStatus(404))
	assert.Equal(t, "5xx", classifyStatus(503))
	assert.Equal(t, "error", classifyStatus(0))
	assert.Equal(t, "unknown", classifyStatus(700))
}

func TestRecordUploaded(t *testing.T) {
	before := testutil.ToFloat64(syncedItemsTotal.WithLabelValues("test", "stocks"))
	RecordUploaded("test", "stocks", 42)
	after := testutil.ToFloat64(syncedItemsTotal.WithLabelValues("test", "stocks"))

	assert.Equal(t, float64(42), after-before)
}
