package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"twilio-demo/server/internal/domain/chat"
	"twilio-demo/server/internal/domain/video"
)

// ProvideChatService provides a chat service.
func ProvideChatService(api chat.API, issuer chat.TokenIssuer, log zerolog.Logger) chat.Service {
	return chat.NewService(api, issuer, log)
}

// ProvideVideoService provides a video service.
func ProvideVideoService(api video.API, issuer video.TokenIssuer, log zerolog.Logger) video.Service {
	return video.NewService(api, issuer, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideChatService,
	ProvideVideoService,
)
