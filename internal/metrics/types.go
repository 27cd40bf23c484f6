package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	AggregationDuration *prometheus.HistogramVec
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
	Writes              *prometheus.CounterVec
	SlackCommands       *prometheus.CounterVec
	EventsPublished     prometheus.Counter
	EventsFailed        prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
