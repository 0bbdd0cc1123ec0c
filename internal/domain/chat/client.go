package chat

import (
	"context"
	"time"
)

// API is the upstream Conversations management client.
// Every call hits the upstream service directly; there is no local cache.
type API interface {
	// CreateConversation creates a conversation. friendlyName may be empty.
	CreateConversation(ctx context.Context, friendlyName string) (*Conversation, error)

	// ListConversations returns the current upstream snapshot.
	ListConversations(ctx context.Context) ([]*Conversation, error)

	// FetchConversation retrieves a conversation by SID.
	FetchConversation(ctx context.Context, sid string) (*Conversation, error)

	// DeleteConversation removes a conversation by SID.
	DeleteConversation(ctx context.Context, sid string) error

	// AddParticipant adds an identity to a conversation.
	AddParticipant(ctx context.Context, conversationSID, identity string) (*Participant, error)

	// ListParticipants returns the participants of a conversation.
	ListParticipants(ctx context.Context, conversationSID string) ([]*Participant, error)

	// SendMessage posts a message to a conversation.
	SendMessage(ctx context.Context, conversationSID, author, body string) (*Message, error)

	// ListMessages returns the messages of a conversation.
	ListMessages(ctx context.Context, conversationSID string) ([]*Message, error)
}

// TokenIssuer mints chat access tokens.
type TokenIssuer interface {
	ChatToken(identity string) (value string, expiresAt time.Time, err error)
}
