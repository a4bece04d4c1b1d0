package middleware

import (
	"net/http"
	"time"

	"gomarket_sync/metrics"
)

// PrometheusMiddleware оборачивает транспорт клиента для сбора метрик исходящих запросов.
func PrometheusMiddleware(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()

		resp, err := next.RoundTrip(req)

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		metrics.RecordRequest(req.Method, req.URL.Path, status, time.Since(start))
		return resp, err
	})
}
