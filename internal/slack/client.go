package slack

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/slack-go/slack"
)

// ErrNotConfigured is returned when posting without a token or channel.
var ErrNotConfigured = errors.New("slack client or channel ID is not configured")

// NewClient creates a new Slack client wrapper. An empty token yields a
// client that refuses to post.
func NewClient(token, channelID string) *SlackClient {
	if token == "" {
		return &SlackClient{channelID: channelID}
	}
	return &SlackClient{
		api:       slack.New(token),
		channelID: channelID,
	}
}

// NewClientWithAPI creates a new Slack client with a custom API client. Used for testing.
func NewClientWithAPI(api *slack.Client, channelID string) *SlackClient {
	return &SlackClient{
		api:       api,
		channelID: channelID,
	}
}

// Configured reports whether the client can post to a channel.
func (c *SlackClient) Configured() bool {
	return c != nil && c.api != nil && c.channelID != ""
}

// SendMessage posts message to the configured channel and returns the
// channel and timestamp Slack assigned to it.
func (c *SlackClient) SendMessage(ctx context.Context, message slack.Message, counters metrics.CounterStore, dryRun bool) (string, string, error) {
	if !c.Configured() {
		log.Warn("Slack client or channel ID is not configured. Skipping message.")
		return "", "", ErrNotConfigured
	}

	if dryRun {
		log.Info("Dry run mode: Slack message not sent.", "msg", message)
		return "", "", nil
	}

	channel, ts, err := c.api.PostMessageContext(ctx, c.channelID, slack.MsgOptionBlocks(message.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err)
		return "", "", err
	}
	if counters != nil {
		counters.Increment("slack_messages_sent")
	}
	return channel, ts, nil
}
