package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	aggregations    map[string]int
	cacheHits       int
	cacheMisses     int
	writes          map[string]int
	slackCommands   map[string]int
	eventsPublished int
	eventsFailed    int
	startupTime     float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		aggregations:  make(map[string]int),
		writes:        make(map[string]int),
		slackCommands: make(map[string]int),
	}
}

func (m *Mock) ObserveAggregation(kind string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregations[kind]++
}

func (m *Mock) IncCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) IncWrite(entity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes[entity]++
}

func (m *Mock) IncSlackCommand(command string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackCommands[command]++
}

func (m *Mock) IncEventPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) IncEventFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Aggregations returns how often ObserveAggregation was called for kind.
func (m *Mock) Aggregations(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aggregations[kind]
}

// CacheHits returns the number of times IncCacheHit was called.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// CacheMisses returns the number of times IncCacheMiss was called.
func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

// Writes returns the number of writes recorded for entity.
func (m *Mock) Writes(entity string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[entity]
}

// SlackCommands returns the number of times command was handled.
func (m *Mock) SlackCommands(command string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackCommands[command]
}

// EventsPublished returns the number of times IncEventPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

// EventsFailed returns the number of times IncEventFailed was called.
func (m *Mock) EventsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsFailed
}
