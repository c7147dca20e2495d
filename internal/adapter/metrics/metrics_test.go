package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/pscheid92/reviewsense/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisMetrics_ObserveAnalysis(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAnalysisMetrics(reg)

	m.ObserveAnalysis("rule", domain.Positive, 0.9, 2*time.Millisecond)
	m.ObserveAnalysis("rule", domain.Positive, 0.7, time.Millisecond)
	m.ObserveAnalysis("model", domain.Negative, 0.55, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("rule", "Positive")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("model", "Negative")), 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Confidence))
}

func TestAnalysisMetrics_SetModelLoaded(t *testing.T) {
	m := NewAnalysisMetrics(prometheus.NewRegistry())

	m.SetModelLoaded(true)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ModelLoaded), 1e-9)

	m.SetModelLoaded(false)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ModelLoaded), 1e-9)
}

func TestAnalysisMetrics_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAnalysisMetrics(reg)
	m.ObserveAnalysis("vader", domain.Neutral, 0.5, time.Millisecond)

	expected := `
# HELP reviewsense_analyses_total Total number of completed analyses, by scorer and label.
# TYPE reviewsense_analyses_total counter
reviewsense_analyses_total{label="Neutral",scorer="vader"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "reviewsense_analyses_total"))
}

func TestHTTPMetrics_RecordsRoutesAndSkipsHealth(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.POST("/analyze", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, r := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/analyze", nil),
		httptest.NewRequest(http.MethodPost, "/analyze", nil),
		httptest.NewRequest(http.MethodGet, "/health/live", nil),
	} {
		e.ServeHTTP(httptest.NewRecorder(), r)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/analyze", "200")), 1e-9)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal))
	assert.InDelta(t, 0, testutil.ToFloat64(m.InFlightGauge), 1e-9)
}

func TestHandler_ServesRegistry(t *testing.T) {
	reg := NewRegistry()
	m := NewAnalysisMetrics(reg)
	m.SetModelLoaded(true)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reviewsense_model_loaded 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHTTPMetrics_UsesReturnedErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.POST("/compare", func(c echo.Context) error { return echo.ErrRequestEntityTooLarge })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/compare", nil))

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/compare", "413")), 1e-9)
}
