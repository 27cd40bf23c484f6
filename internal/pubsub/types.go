package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/google/uuid"
)

type client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// EventType represents the type of change event sent via pubsub.
type EventType string

const (
	EventStatLineWritten EventType = "statline.written"
	EventStatLineDeleted EventType = "statline.deleted"
	EventPlayerWritten   EventType = "player.written"
	EventPlayerDeleted   EventType = "player.deleted"
	EventGameWritten     EventType = "game.written"
	EventGameDeleted     EventType = "game.deleted"
)

// ChangeEvent announces an acknowledged write to the roster or box scores.
type ChangeEvent struct {
	ID         string    `msgpack:"id"`
	Type       EventType `msgpack:"type"`
	PlayerID   *int64    `msgpack:"player_id"`
	GameID     *int64    `msgpack:"game_id"`
	OccurredAt int64     `msgpack:"occurred_at"`
}

// NewEvent creates a ChangeEvent with a fresh ID and the current time.
func NewEvent(eventType EventType, playerID, gameID *int64) ChangeEvent {
	return ChangeEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		PlayerID:   playerID,
		GameID:     gameID,
		OccurredAt: time.Now().Unix(),
	}
}
