package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	ObserveAggregation(kind string, duration float64)
	IncCacheHit()
	IncCacheMiss()
	IncWrite(entity string)
	IncSlackCommand(command string)
	IncEventPublished()
	IncEventFailed()
	SetStartupTime(duration float64)
}

// CounterStore persists named counters that survive restarts.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
