package config

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/analytics"
)

// Config holds all configuration for the application.
type Config struct {
	DBName      string
	Port        string
	LogLevel    log.Level
	CORSOrigins []string
	RedisURL    string
	ProjectID   string
	EventsTopic string
	Turso       TursoConfig
	Auth        AuthConfig
	Slack       SlackConfig
	Stats       StatsConfig
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}
type StatsConfig struct {
	Sentinel    analytics.SentinelPolicy
	IncludeOREB bool
}
