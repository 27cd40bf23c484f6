package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		AggregationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "courtside_aggregation_duration_seconds",
			Help:    "The duration of stat aggregations, by kind.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"kind"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_cache_hits_total",
			Help: "The total number of aggregate reads served from the cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_cache_misses_total",
			Help: "The total number of aggregate reads computed from the database.",
		}),
		Writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_writes_total",
			Help: "The total number of writes, by entity.",
		}, []string{"entity"}),
		SlackCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_slack_commands_total",
			Help: "The total number of Slack slash commands handled, by command.",
		}, []string{"command"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_events_published_total",
			Help: "The total number of change events published.",
		}),
		EventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_events_failed_total",
			Help: "The total number of change events that failed to publish.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.AggregationDuration,
		s.CacheHits,
		s.CacheMisses,
		s.Writes,
		s.SlackCommands,
		s.EventsPublished,
		s.EventsFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) ObserveAggregation(kind string, duration float64) {
	s.AggregationDuration.WithLabelValues(kind).Observe(duration)
}

func (s *Service) IncCacheHit() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMiss() {
	s.CacheMisses.Inc()
}

func (s *Service) IncWrite(entity string) {
	s.Writes.WithLabelValues(entity).Inc()
}

func (s *Service) IncSlackCommand(command string) {
	s.SlackCommands.WithLabelValues(command).Inc()
}

func (s *Service) IncEventPublished() {
	s.EventsPublished.Inc()
}

func (s *Service) IncEventFailed() {
	s.EventsFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
