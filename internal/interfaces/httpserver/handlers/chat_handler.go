package handlers

import (
	"context"

	"twilio-demo/server/internal/domain/chat"
)

// ChatHandler handles chat-related HTTP requests.
type ChatHandler struct {
	service chat.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// IssueToken mints a chat access token for an identity.
func (h *ChatHandler) IssueToken(ctx context.Context, identity string) (*chat.Token, error) {
	return h.service.IssueToken(ctx, identity)
}

// CreateConversation creates a conversation.
func (h *ChatHandler) CreateConversation(ctx context.Context, friendlyName string) (*chat.Conversation, error) {
	return h.service.CreateConversation(ctx, friendlyName)
}

// ListConversations lists conversations.
func (h *ChatHandler) ListConversations(ctx context.Context) ([]*chat.Conversation, error) {
	return h.service.ListConversations(ctx)
}

// GetConversation retrieves a conversation by SID.
func (h *ChatHandler) GetConversation(ctx context.Context, sid string) (*chat.Conversation, error) {
	return h.service.GetConversation(ctx, sid)
}

// JoinConversation adds an identity to a conversation by SID.
func (h *ChatHandler) JoinConversation(ctx context.Context, sid, identity string) (*chat.Participant, error) {
	return h.service.JoinConversation(ctx, sid, identity)
}

// JoinConversationByName resolves or creates a conversation by name and joins it.
func (h *ChatHandler) JoinConversationByName(ctx context.Context, name, identity string) (*chat.Conversation, error) {
	return h.service.JoinConversationByName(ctx, name, identity)
}

// DeleteConversation removes a conversation.
func (h *ChatHandler) DeleteConversation(ctx context.Context, sid string) error {
	return h.service.DeleteConversation(ctx, sid)
}

// ListParticipants lists the participants of a conversation.
func (h *ChatHandler) ListParticipants(ctx context.Context, sid string) ([]*chat.Participant, error) {
	return h.service.ListParticipants(ctx, sid)
}

// SendMessage posts a message to a conversation.
func (h *ChatHandler) SendMessage(ctx context.Context, sid, author, body string) (*chat.Message, error) {
	return h.service.SendMessage(ctx, sid, author, body)
}

// ListMessages lists the messages of a conversation.
func (h *ChatHandler) ListMessages(ctx context.Context, sid string) ([]*chat.Message, error) {
	return h.service.ListMessages(ctx, sid)
}
