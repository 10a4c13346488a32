package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", m.Handler())

	for _, id := range []string{"1", "2"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		require.Equal(t, http.StatusOK, resp.Code)
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), "http_requests_total"))
}

func TestObserveEvaluation(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveEvaluation(OutcomeCompleted, 3*time.Second)
	m.ObserveEvaluation(OutcomeParseError, time.Second)
	m.IncModelAttempt(AttemptFailed)
	m.IncModelAttempt(AttemptFailed)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.evaluations.WithLabelValues(OutcomeCompleted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.evaluations.WithLabelValues(OutcomeParseError)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.modelAttempts.WithLabelValues(AttemptFailed)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveEvaluation(OutcomeCompleted, time.Second)
	m.IncModelAttempt(AttemptSucceeded)
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}
