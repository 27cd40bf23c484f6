package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/metrics"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func HealthCheckHandler(db Pinger, counters metrics.CounterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		if err := db.PingContext(r.Context()); err != nil {
			log.Error("Health check failed to reach the database", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "unreachable"})
			return
		}

		all, err := counters.GetAll()
		if err != nil {
			log.Warn("Failed to read counters", "error", err)
			all = map[string]int{}
		}
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "database": "ok", "counters": all})
	}
}
