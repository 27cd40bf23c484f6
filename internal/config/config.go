package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/courtside/internal/analytics"
)

// Load reads configuration from environment variables and .env file.
// It exits the process when a required variable is missing or malformed.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	// A helper function to get a required env var.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName:      getEnv("DB_NAME"),
		Port:        getEnvOr("PORT", "8080"),
		RedisURL:    getEnvOr("REDIS_URL", ""),
		ProjectID:   getEnvOr("GCP_PROJECT", ""),
		EventsTopic: getEnvOr("EVENTS_TOPIC", "stat-changes"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET"),
		},
		Slack: SlackConfig{
			Token:         getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvOr("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvOr("SLACK_SIGNING_SECRET", ""),
		},
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.LogLevel, err = log.ParseLevel(getEnvOr("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	ttl, err := strconv.Atoi(getEnvOr("TOKEN_TTL_MINUTES", "60"))
	if err != nil || ttl < 1 {
		return Config{}, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer")
	}
	cfg.Auth.TokenTTL = time.Duration(ttl) * time.Minute

	if cfg.Stats.Sentinel, err = analytics.ParseSentinelPolicy(getEnvOr("SENTINEL_POLICY", string(analytics.SentinelZero))); err != nil {
		return Config{}, fmt.Errorf("SENTINEL_POLICY: %w", err)
	}
	if cfg.Stats.IncludeOREB, err = strconv.ParseBool(getEnvOr("INCLUDE_OREB", "true")); err != nil {
		return Config{}, fmt.Errorf("INCLUDE_OREB: %w", err)
	}

	for _, origin := range strings.Split(getEnvOr("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	return cfg, nil
}
