package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tpupu/resume-builder/internal/server"
	"github.com/Tpupu/resume-builder/internal/shared/config"
)

func newTestRouter() http.Handler {
	return server.NewRouter(config.Config{
		Port:            "8080",
		Env:             "dev",
		RateLimitPerMin: 600,
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestMetricsExposition(t *testing.T) {
	router := newTestRouter()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "pdf_renders_total") {
		t.Fatal("expected metrics exposition")
	}
}

func TestStaticStylesheetServed(t *testing.T) {
	router := newTestRouter()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestUnknownRouteReturnsStandardError(t *testing.T) {
	router := newTestRouter()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "not_found") {
		t.Fatalf("expected standardized error body, got %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9001": ":9001",
	}
	for in, want := range cases {
		if got := server.Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
