package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncCacheHit()
	svc.IncCacheHit()
	svc.IncCacheMiss()
	svc.IncWrite("statline")
	svc.IncSlackCommand("leaders")
	svc.ObserveAggregation("totals", 0.002)
	svc.SetStartupTime(1.5)

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	for _, want := range []string{
		"courtside_cache_hits_total 2",
		"courtside_cache_misses_total 1",
		`courtside_writes_total{entity="statline"} 1`,
		`courtside_slack_commands_total{command="leaders"} 1`,
		"courtside_startup_duration_seconds 1.5",
	} {
		assert.Contains(t, string(body), want)
	}
	assert.Contains(t, string(body), `courtside_aggregation_duration_seconds_count{kind="totals"} 1`)
}
