package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the twilio-api service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"twilio-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"TWILIO_API_PORT" envDefault:"6969"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// CORS (web frontend origin)
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"http://localhost:5173"`

	// Twilio credentials
	TwilioAccountSID        string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken         string `env:"TWILIO_AUTH_TOKEN"`
	TwilioAPIKeySID         string `env:"TWILIO_API_KEY_SID"`
	TwilioAPIKeySecret      string `env:"TWILIO_API_KEY_SECRET"`
	ConversationsServiceSID string `env:"TWILIO_CONVERSATIONS_SERVICE_SID"`

	// Twilio REST API
	ConversationsBaseURL string        `env:"TWILIO_CONVERSATIONS_BASE_URL" envDefault:"https://conversations.twilio.com/v1"`
	VideoBaseURL         string        `env:"TWILIO_VIDEO_BASE_URL" envDefault:"https://video.twilio.com/v1"`
	UpstreamTimeout      time.Duration `env:"TWILIO_HTTP_TIMEOUT" envDefault:"15s"`
	ListPageSize         int           `env:"TWILIO_LIST_PAGE_SIZE" envDefault:"50"`

	// Access tokens
	TokenTTL time.Duration `env:"TWILIO_TOKEN_TTL" envDefault:"1h"`
}

// Load parses environment variables into Config.
// Missing Twilio credentials are a configuration error: the process must not
// serve traffic without them.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.TwilioAccountSID) == "" {
		return nil, fmt.Errorf("TWILIO_ACCOUNT_SID is required")
	}
	if strings.TrimSpace(cfg.TwilioAuthToken) == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN is required")
	}
	if strings.TrimSpace(cfg.TwilioAPIKeySID) == "" {
		return nil, fmt.Errorf("TWILIO_API_KEY_SID is required")
	}
	if strings.TrimSpace(cfg.TwilioAPIKeySecret) == "" {
		return nil, fmt.Errorf("TWILIO_API_KEY_SECRET is required")
	}
	if strings.TrimSpace(cfg.ConversationsServiceSID) == "" {
		return nil, fmt.Errorf("TWILIO_CONVERSATIONS_SERVICE_SID is required")
	}

	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
