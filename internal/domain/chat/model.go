package chat

import "time"

// Conversation is the canonical upstream representation of a conversation.
// The upstream service owns the lifecycle; this service never stores it.
type Conversation struct {
	SID          string
	FriendlyName string
	State        string
	DateCreated  time.Time
}

// Participant represents a conversation participant.
type Participant struct {
	SID             string
	ConversationSID string
	Identity        string
	DateCreated     time.Time
}

// Message represents a message in a conversation.
type Message struct {
	SID             string
	ConversationSID string
	Author          string
	Body            string
	DateCreated     time.Time
}

// Token is a signed access token bound to an identity.
type Token struct {
	Value     string
	Identity  string
	ExpiresAt time.Time
}
