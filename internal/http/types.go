package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/config"
	"github.com/mauv0809/courtside/internal/http/handlers"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/slack"
)

type Server struct {
	DB             *sql.DB
	Store          club.ClubStore
	Lines          boxscore.Store
	Users          auth.UserStore
	Issuer         *auth.Issuer
	Aggregates     handlers.Aggregates
	Changes        handlers.Changes
	Counters       metrics.CounterStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	SlackClient    *slack.SlackClient
	Cfg            config.Config
	Router         chi.Router
	pubsub         pubsub.PubSubClient
}
