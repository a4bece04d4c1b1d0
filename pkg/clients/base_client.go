package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/time/rate"

	"gomarket_sync/pkg/errkind"
	"gomarket_sync/pkg/logger"
	"gomarket_sync/pkg/middleware"
)

const maxErrorBody = 512

type Options struct {
	Timeout time.Duration
	// При RequestsPerSecond <= 0 ограничения нет.
	RequestsPerSecond float64
	Transport         http.RoundTripper
}

type BaseClient struct {
	ApiURL  string
	log     logger.Logger
	client  *http.Client
	auth    AuthEngine
	limiter *rate.Limiter
}

func NewBaseClient(apiURL string, auth AuthEngine, log logger.Logger, opts Options) *BaseClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &BaseClient{
		ApiURL: strings.TrimRight(apiURL, "/"),
		log:    log,
		client: &http.Client{
			Timeout:   timeout,
			Transport: middleware.Chain(opts.Transport, middleware.PrometheusMiddleware),
		},
		auth:    auth,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// DoRequest отправляет JSON-запрос и декодирует ответ в response (если он не nil).
func (c *BaseClient) DoRequest(ctx context.Context, method, endpoint string, query url.Values, requestBody interface{}, response interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if requestBody != nil {
		bodyBytes, err := sonic.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(bodyBytes)
	}

	target := c.ApiURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.auth != nil {
		c.auth.SetApiKey(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}
		c.log.Warn("%s %s returned status %d: %s", method, endpoint, resp.StatusCode, respBody)
		return &errkind.StatusError{
			Method:   method,
			Endpoint: endpoint,
			Code:     resp.StatusCode,
			Body:     string(respBody),
		}
	}

	if response == nil || len(respBody) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
