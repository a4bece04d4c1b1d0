package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	marketplaceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_requests_total",
			Help: "Total number of outgoing marketplace API requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	marketplaceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_request_duration_seconds",
			Help:    "Histogram of outgoing marketplace API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	syncedItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_items_uploaded_total",
			Help: "Total number of stock/price records uploaded to marketplaces.",
		},
		[]string{"marketplace", "resource"},
	)
	syncErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_errors_total",
			Help: "Total number of failed sync targets by error kind.",
		},
		[]string{"marketplace", "kind"},
	)
)

func init() {
	prometheus.MustRegister(marketplaceRequestsTotal)
	prometheus.MustRegister(marketplaceRequestDuration)
	prometheus.MustRegister(syncedItemsTotal)
	prometheus.MustRegister(syncErrorsTotal)
}

// RecordRequest записывает метрики для исходящего HTTP-запроса.
// statusCode == 0 означает, что ответ не был получен.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	marketplaceRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	marketplaceRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordUploaded увеличивает счетчик выгруженных записей (resource: stocks | prices).
func RecordUploaded(marketplace, resource string, count int) {
	syncedItemsTotal.WithLabelValues(marketplace, resource).Add(float64(count))
}

func RecordSyncError(marketplace, kind string) {
	syncErrorsTotal.WithLabelValues(marketplace, kind).Inc()
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	} else if statusCode == 0 {
		return "error"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
