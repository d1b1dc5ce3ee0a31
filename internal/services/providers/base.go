package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"CardPulse/pkg/config"
	xhttp "CardPulse/pkg/http"
)

// HTTPServiceBase centralizes client construction and JSON request
// handling for the external data-provider adapters.
type HTTPServiceBase struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPServiceBase builds an HTTP client with the provider timeout
// from config against the given base URL.
func NewHTTPServiceBase(cfg *config.Config, baseURL string) *HTTPServiceBase {
	timeout := cfg.Providers.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPServiceBase{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// GetJSON issues a GET to `path` under baseURL and decodes JSON into dest.
func (b *HTTPServiceBase) GetJSON(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("provider http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      http.MethodGet,
		URL:         b.baseURL + path,
		QueryParams: query,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

// GetJSONWithRetry retries transient GET failures with a short backoff.
func (b *HTTPServiceBase) GetJSONWithRetry(ctx context.Context, path string, query map[string][]string, dest interface{}, attempts int) error {
	if attempts <= 1 {
		return b.GetJSON(ctx, path, query, dest)
	}
	var err error
	for i := 1; i <= attempts; i++ {
		err = b.GetJSON(ctx, path, query, dest)
		if err == nil {
			return nil
		}
		select {
		case <-time.After(time.Duration(i) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
