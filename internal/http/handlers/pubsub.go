package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/pubsub"
)

// ChangeEventHandler receives change events from a Pub/Sub push
// subscription and tallies them per event type.
func ChangeEventHandler(pubsubClient pubsub.PubSubClient, counters metrics.CounterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		log.Debug("Received change event message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data       string            `json:"data"`
				Attributes map[string]string `json:"attributes"`
				MessageID  string            `json:"messageId"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		event := pubsub.ChangeEvent{}
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			// Acknowledge anyway; a malformed message will never decode on redelivery.
			log.Error("Failed to decode change event", "error", err, "messageID", pubsubMsg.Message.MessageID)
			w.Write([]byte("OK"))
			return
		}
		log.Info("Change event received", "type", event.Type, "eventID", event.ID, "subscription", pubsubMsg.Subscription)
		counters.Increment("events_" + string(event.Type))
		w.Write([]byte("OK"))
	}
}
