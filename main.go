package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/analytics"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/boxscore"
	"github.com/mauv0809/courtside/internal/cache"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/config"
	"github.com/mauv0809/courtside/internal/database"
	server "github.com/mauv0809/courtside/internal/http"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/slack"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	ctx := context.Background()
	clubStore := club.New(db)
	lines := boxscore.New(db)
	users := auth.New(db)
	counters := metrics.NewCounterStore(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	engine := analytics.New(lines,
		analytics.WithSentinel(cfg.Stats.Sentinel),
		analytics.WithOREB(cfg.Stats.IncludeOREB),
	)

	resultCache := cache.NewNoop()
	if cfg.RedisURL != "" {
		resultCache, err = cache.NewRedis(ctx, cfg.RedisURL, cache.DefaultTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %s", err)
		}
		log.Info("Aggregate cache enabled", "backend", "redis")
	}
	defer resultCache.Close()

	events := pubsub.NewNoop()
	if cfg.ProjectID != "" {
		events, err = pubsub.New(ctx, cfg.ProjectID, cfg.EventsTopic)
		if err != nil {
			log.Fatalf("Failed to create Pub/Sub client: %s", err)
		}
		log.Info("Change events enabled", "project", cfg.ProjectID, "topic", cfg.EventsTopic)
	}
	defer events.Close()

	slackClient := slack.NewClient(cfg.Slack.Token, cfg.Slack.ChannelID)

	s := server.NewServer(
		db,
		clubStore,
		lines,
		users,
		engine,
		resultCache,
		metricsSvc,
		metricsHandler,
		counters,
		slackClient,
		events,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
