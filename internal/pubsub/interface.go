package pubsub

import "context"

type PubSubClient interface {
	SendMessage(ctx context.Context, event ChangeEvent) error
	ProcessMessage(data []byte, returnValue any) error
	Close() error
}
