package handlers

import (
	"github.com/google/wire"

	"twilio-demo/server/internal/domain/chat"
	"twilio-demo/server/internal/domain/video"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Chat  *ChatHandler
	Video *VideoHandler
}

// NewProvider creates a new handler provider.
func NewProvider(chatService chat.Service, videoService video.Service) *Provider {
	return &Provider{
		Chat:  NewChatHandler(chatService),
		Video: NewVideoHandler(videoService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewChatHandler,
	NewVideoHandler,
	NewProvider,
)
