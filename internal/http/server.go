package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/cache"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/config"
	"github.com/mauv0809/courtside/internal/http/handlers"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/slack"
)

const requestTimeout = 30 * time.Second

func NewServer(db *sql.DB, store club.ClubStore, lines boxscore.Store, users auth.UserStore, engine *analytics.Engine, resultCache cache.Cache, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.CounterStore, slackClient *slack.SlackClient, pubsub pubsub.PubSubClient, cfg config.Config) *Server {
	server := &Server{
		DB:     db,
		Store:  store,
		Lines:  lines,
		Users:  users,
		Issuer: auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Aggregates: handlers.Aggregates{
			Engine:  engine,
			Cache:   resultCache,
			Metrics: metricsSvc,
		},
		Changes: handlers.Changes{
			Cache:   resultCache,
			Events:  pubsub,
			Metrics: metricsSvc,
		},
		Counters:       counters,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		SlackClient:    slackClient,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	r := s.Router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(paramsMiddleware)

	r.Handle("/metrics", s.MetricsHandler)
	r.Get("/health", handlers.HealthCheckHandler(s.DB, s.Counters))
	r.Post("/auth/token", handlers.LoginHandler(s.Users, s.Issuer))
	r.Post("/pubsub/push", handlers.ChangeEventHandler(s.pubsub, s.Counters))

	verify := slack.VerifyRequests(s.Cfg.Slack.SigningSecret)
	r.Method(http.MethodPost, "/slack/command/leaders",
		Chain(handlers.LeadersCommandHandler(s.Aggregates, s.SlackClient, s.Metrics), verify))
	r.Method(http.MethodPost, "/slack/command/player-stats",
		Chain(handlers.PlayerStatsCommandHandler(s.Aggregates, s.Store, s.SlackClient, s.Metrics), verify))

	authenticate := auth.Middleware(s.Issuer, s.Users)

	// Reads.
	r.Group(func(r chi.Router) {
		r.Use(authenticate, auth.RequireRole(auth.RoleViewer))

		r.Get("/auth/me", handlers.MeHandler())

		r.Get("/players", handlers.ListPlayersHandler(s.Store))
		r.Get("/players/{playerID}", handlers.GetPlayerHandler(s.Store))
		r.Get("/players/{playerID}/game-log", handlers.PlayerGameLogHandler(s.Store, s.Lines))
		r.Get("/players/{playerID}/totals", handlers.PlayerAggregateHandler(s.Aggregates, s.Store, analytics.KindTotals))
		r.Get("/players/{playerID}/averages", handlers.PlayerAggregateHandler(s.Aggregates, s.Store, analytics.KindAverages))
		r.Get("/players/{playerID}/splits/totals", handlers.PlayerSplitsHandler(s.Aggregates, s.Store, analytics.KindTotals))
		r.Get("/players/{playerID}/splits/averages", handlers.PlayerSplitsHandler(s.Aggregates, s.Store, analytics.KindAverages))

		r.Get("/games", handlers.ListGamesHandler(s.Store))
		r.Get("/games/{gameID}", handlers.GetGameHandler(s.Store))

		r.Get("/stat-lines/by-game/{gameID}", handlers.BoxScoreHandler(s.Store, s.Lines))
		r.Get("/stat-lines/by-player/{playerID}/by-game/{gameID}", handlers.GetStatLineHandler(s.Lines))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/players", handlers.PlayerSummariesHandler(s.Aggregates))
			r.Get("/players/{playerID}/totals", handlers.PlayerAggregateHandler(s.Aggregates, s.Store, analytics.KindTotals))
			r.Get("/players/{playerID}/averages", handlers.PlayerAggregateHandler(s.Aggregates, s.Store, analytics.KindAverages))
			r.Get("/leaders", handlers.LeadersHandler(s.Aggregates))
			r.Get("/team/totals", handlers.TeamAggregateHandler(s.Aggregates, analytics.KindTotals))
			r.Get("/team/averages", handlers.TeamAggregateHandler(s.Aggregates, analytics.KindAverages))
			r.Get("/team/splits/totals", handlers.TeamSplitsHandler(s.Aggregates, analytics.KindTotals))
			r.Get("/team/splits/averages", handlers.TeamSplitsHandler(s.Aggregates, analytics.KindAverages))
			r.Get("/team/splits/{group}/{kind}", handlers.TeamSplitHandler(s.Aggregates))
		})
	})

	// Writes.
	r.Group(func(r chi.Router) {
		r.Use(authenticate, auth.RequireRole(auth.RoleAdmin))

		r.Post("/auth/users", handlers.CreateUserHandler(s.Users))

		r.Post("/players", handlers.CreatePlayerHandler(s.Store, s.Changes))
		r.Delete("/players/{playerID}", handlers.DeletePlayerHandler(s.Store, s.Changes))

		r.Post("/games", handlers.CreateGameHandler(s.Store, s.Changes))
		r.Delete("/games/{gameID}", handlers.DeleteGameHandler(s.Store, s.Changes))

		r.Post("/stat-lines", handlers.CreateStatLineHandler(s.Store, s.Lines, s.Changes))
		r.Put("/stat-lines/upsert", handlers.UpsertStatLineHandler(s.Store, s.Lines, s.Changes))
		r.Patch("/stat-lines/by-player/{playerID}/by-game/{gameID}", handlers.PatchStatLineHandler(s.Lines, s.Changes))
		r.Delete("/stat-lines/by-player/{playerID}/by-game/{gameID}", handlers.DeleteStatLineHandler(s.Lines, s.Changes))

		r.Post("/slack/announce/leaders", handlers.AnnounceLeadersHandler(s.Aggregates, s.SlackClient, s.Counters))
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
