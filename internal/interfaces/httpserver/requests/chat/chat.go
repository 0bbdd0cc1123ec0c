// Package chatreq contains HTTP request DTOs for chat endpoints.
package chatreq

// TokenRequest represents the request body for issuing a chat token.
type TokenRequest struct {
	Identity string `json:"identity"`
}

// CreateConversationRequest represents the request body for creating a conversation.
type CreateConversationRequest struct {
	FriendlyName string `json:"friendly_name,omitempty"`
}

// JoinConversationRequest represents the request body for joining a conversation by SID.
type JoinConversationRequest struct {
	ConversationSID string `json:"conversation_sid"`
	Identity        string `json:"identity"`
}

// JoinByNameRequest represents the request body for joining a conversation by name.
type JoinByNameRequest struct {
	ConversationName string `json:"conversation_name"`
	Identity         string `json:"identity"`
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	ConversationSID string `json:"conversation_sid"`
	Author          string `json:"author"`
	Body            string `json:"body"`
}
