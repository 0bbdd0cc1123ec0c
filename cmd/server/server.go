// @title           Twilio Chat & Video API
// @version         1.0
// @description     Backend for the chat/video demo app.
// @description     Issues Twilio access tokens and proxies conversation and room administration.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:6969
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"twilio-demo/server/internal/config"
	"twilio-demo/server/internal/domain/chat"
	"twilio-demo/server/internal/domain/video"
	"twilio-demo/server/internal/infrastructure/logger"
	"twilio-demo/server/internal/infrastructure/observability"
	"twilio-demo/server/internal/infrastructure/twilio"
	"twilio-demo/server/internal/interfaces/httpserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application.
func (a *Application) Start(ctx context.Context) error {
	// Run HTTP server (blocks until context cancelled)
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials: refuse to serve traffic.
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize Twilio clients
	tokenBuilder := twilio.NewAccessTokenBuilder(cfg)
	apiClient := twilio.NewClient(cfg, log)

	// Initialize domain services
	chatService := chat.NewService(apiClient, tokenBuilder, log)
	videoService := video.NewService(apiClient, tokenBuilder, log)

	// Initialize HTTP server
	httpServer := httpserver.New(cfg, log, chatService, videoService)

	// Create and start application
	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
