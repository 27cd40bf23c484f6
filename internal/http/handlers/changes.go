package handlers

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/cache"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/pubsub"
)

// Changes runs the side effects of an acknowledged write: cached
// aggregates are dropped and a change event is published.
type Changes struct {
	Cache   cache.Cache
	Events  pubsub.PubSubClient
	Metrics metrics.Metrics
}

// Record is called after a write has committed.
func (c Changes) Record(ctx context.Context, entity string, eventType pubsub.EventType, playerID, gameID *int64) {
	c.Metrics.IncWrite(entity)

	if err := c.Cache.Invalidate(ctx); err != nil {
		log.Error("Failed to invalidate aggregate cache", "error", err, "entity", entity)
	}

	event := pubsub.NewEvent(eventType, playerID, gameID)
	if err := c.Events.SendMessage(ctx, event); err != nil {
		log.Error("Failed to publish change event", "error", err, "type", eventType, "eventID", event.ID)
		c.Metrics.IncEventFailed()
		return
	}
	c.Metrics.IncEventPublished()
}
