package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/orcamento/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		Database: &stubChecker{},
		EventBus: &stubChecker{},
		Cache:    &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp["status"] != "ok" || resp["cache"] != "ok" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthHandler_CacheDisabled(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		Database: &stubChecker{},
		EventBus: &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp["cache"] != "disabled" {
		t.Errorf("cache: got %q, want %q", resp["cache"], "disabled")
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	tests := []struct {
		name   string
		checks httpx.HealthChecks
		field  string
	}{
		{"database down", httpx.HealthChecks{Database: &stubChecker{err: errors.New("conn refused")}, EventBus: &stubChecker{}}, "database"},
		{"event bus down", httpx.HealthChecks{Database: &stubChecker{}, EventBus: &stubChecker{err: errors.New("timeout")}}, "event_bus"},
		{"cache down", httpx.HealthChecks{Database: &stubChecker{}, EventBus: &stubChecker{}, Cache: &stubChecker{err: errors.New("timeout")}}, "cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, resp := serveHealth(t, tt.checks)
			if rr.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected 503, got %d", rr.Code)
			}
			if resp["status"] != "degraded" || resp[tt.field] != "unreachable" {
				t.Errorf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := serveHealth(t, httpx.HealthChecks{Database: &stubChecker{}, EventBus: &stubChecker{}})

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
