package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestServerMetricsEndpointConfigurable(t *testing.T) {
	s := NewServer(nil, WithMetrics(true, "/internal/metrics"))

	req := httptest.NewRequest(http.MethodGet, "/internal/metrics", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected scrape endpoint on configured path, got %d", rec.Code)
	}
}

func TestServerMetricsEndpointDisabled(t *testing.T) {
	s := NewServer(nil, WithMetrics(false, ""))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("metrics disabled should 404, got %d", rec.Code)
	}
}
