//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"twilio-demo/server/internal/config"
	"twilio-demo/server/internal/domain"
	"twilio-demo/server/internal/domain/chat"
	"twilio-demo/server/internal/domain/video"
	"twilio-demo/server/internal/infrastructure/twilio"
	"twilio-demo/server/internal/interfaces/httpserver"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideAccessTokenBuilder,
	ProvideChatTokenIssuer,
	ProvideVideoTokenIssuer,
	ProvideAPIClient,
	ProvideChatAPI,
	ProvideVideoAPI,

	// Domain providers
	domain.ServiceProvider,

	// Interface providers
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideAccessTokenBuilder provides the Twilio access token builder.
func ProvideAccessTokenBuilder(cfg *config.Config) *twilio.AccessTokenBuilder {
	return twilio.NewAccessTokenBuilder(cfg)
}

// ProvideChatTokenIssuer provides a chat token issuer.
func ProvideChatTokenIssuer(builder *twilio.AccessTokenBuilder) chat.TokenIssuer {
	return builder
}

// ProvideVideoTokenIssuer provides a video token issuer.
func ProvideVideoTokenIssuer(builder *twilio.AccessTokenBuilder) video.TokenIssuer {
	return builder
}

// ProvideAPIClient provides the Twilio management API client.
func ProvideAPIClient(cfg *config.Config, log zerolog.Logger) *twilio.Client {
	return twilio.NewClient(cfg, log)
}

// ProvideChatAPI provides the conversations management API.
func ProvideChatAPI(client *twilio.Client) chat.API {
	return client
}

// ProvideVideoAPI provides the rooms management API.
func ProvideVideoAPI(client *twilio.Client) video.API {
	return client
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
