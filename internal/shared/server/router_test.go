package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"ats-resume/internal/shared/config"
	"ats-resume/internal/shared/metrics"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func TestNewRouterServesHealthMetricsAndFeatures(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	router := NewRouter(config.Config{Env: config.EnvDev}, m, pingRoutes{})

	for path, want := range map[string]string{
		"/api/v1/health": `"ok":true`,
		"/api/v1/ping":   "pong",
	} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), want) {
			t.Fatalf("%s: unexpected response %d %s", path, resp.Code, resp.Body.String())
		}
		if resp.Header().Get("X-Request-Id") == "" {
			t.Fatalf("%s: missing request id header", path)
		}
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `path="/api/v1/health"`) {
		t.Fatalf("unexpected metrics output: %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	tests := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range tests {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
