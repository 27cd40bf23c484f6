package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
)

// New creates a client publishing to topicID in projectID.
func New(ctx context.Context, projectID, topicID string, opts ...option.ClientOption) (PubSubClient, error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	log.Info("Pub/Sub client created", "project", projectID, "topic", topicID)
	return &client{
		client: pubSubC,
		topic:  pubSubC.Topic(topicID),
	}, nil
}

// SendMessage publishes event as MessagePack and waits for the server ID.
// The event type is also set as a message attribute for subscription filters.
func (c *client) SendMessage(ctx context.Context, event ChangeEvent) error {
	msgpackData, err := msgpack.Marshal(event)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{"type": string(event.Type)},
	}
	result := c.topic.Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", c.topic.ID(), "type", event.Type)
		return err
	}
	log.Debug("SendMessage", "serverID", serverID, "type", event.Type, "eventID", event.ID)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (c *client) Close() error {
	c.topic.Stop()
	return c.client.Close()
}

// noop drops every event. It is used when no GCP project is configured.
type noop struct{}

// NewNoop creates a client that logs and discards events.
func NewNoop() PubSubClient {
	return noop{}
}

func (noop) SendMessage(_ context.Context, event ChangeEvent) error {
	log.Debug("Pub/Sub disabled, dropping event", "type", event.Type, "eventID", event.ID)
	return nil
}

func (noop) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (noop) Close() error { return nil }

func decode(data []byte, returnValue any) error {
	// Unmarshal the MessagePack data into the provided pointer struct
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}
