// Package chatres contains HTTP response DTOs for chat endpoints.
package chatres

import (
	"time"

	domainchat "twilio-demo/server/internal/domain/chat"
)

// TokenResponse represents an issued chat token.
type TokenResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
}

// ConversationResponse represents a conversation in API responses.
type ConversationResponse struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	DateCreated  string `json:"date_created,omitempty"`
	State        string `json:"state"`
}

// ListConversationsResponse represents the response for listing conversations.
type ListConversationsResponse struct {
	Conversations []*ConversationResponse `json:"conversations"`
}

// JoinResponse represents the response for joining a conversation by SID.
type JoinResponse struct {
	ParticipantSID string `json:"participant_sid"`
	Identity       string `json:"identity"`
}

// ParticipantResponse represents a conversation participant.
type ParticipantResponse struct {
	SID         string `json:"sid"`
	Identity    string `json:"identity"`
	DateCreated string `json:"date_created,omitempty"`
}

// ListParticipantsResponse represents the response for listing participants.
type ListParticipantsResponse struct {
	Participants []*ParticipantResponse `json:"participants"`
}

// MessageResponse represents a conversation message.
type MessageResponse struct {
	SID             string `json:"sid"`
	ConversationSID string `json:"conversation_sid"`
	Author          string `json:"author"`
	Body            string `json:"body"`
	DateCreated     string `json:"date_created,omitempty"`
}

// ListMessagesResponse represents the response for listing messages.
type ListMessagesResponse struct {
	Messages []*MessageResponse `json:"messages"`
}

// NewTokenResponse creates a TokenResponse from a domain Token.
func NewTokenResponse(token *domainchat.Token) *TokenResponse {
	return &TokenResponse{
		Token:    token.Value,
		Identity: token.Identity,
	}
}

// NewConversationResponse creates a ConversationResponse from a domain Conversation.
func NewConversationResponse(conv *domainchat.Conversation) *ConversationResponse {
	return &ConversationResponse{
		SID:          conv.SID,
		FriendlyName: conv.FriendlyName,
		DateCreated:  formatTime(conv.DateCreated),
		State:        conv.State,
	}
}

// NewListConversationsResponse creates a ListConversationsResponse from domain Conversations.
func NewListConversationsResponse(conversations []*domainchat.Conversation) *ListConversationsResponse {
	data := make([]*ConversationResponse, len(conversations))
	for i, conv := range conversations {
		data[i] = NewConversationResponse(conv)
	}
	return &ListConversationsResponse{Conversations: data}
}

// NewJoinResponse creates a JoinResponse from a domain Participant.
func NewJoinResponse(participant *domainchat.Participant) *JoinResponse {
	return &JoinResponse{
		ParticipantSID: participant.SID,
		Identity:       participant.Identity,
	}
}

// NewListParticipantsResponse creates a ListParticipantsResponse from domain Participants.
func NewListParticipantsResponse(participants []*domainchat.Participant) *ListParticipantsResponse {
	data := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		data[i] = &ParticipantResponse{
			SID:         p.SID,
			Identity:    p.Identity,
			DateCreated: formatTime(p.DateCreated),
		}
	}
	return &ListParticipantsResponse{Participants: data}
}

// NewMessageResponse creates a MessageResponse from a domain Message.
func NewMessageResponse(msg *domainchat.Message) *MessageResponse {
	return &MessageResponse{
		SID:             msg.SID,
		ConversationSID: msg.ConversationSID,
		Author:          msg.Author,
		Body:            msg.Body,
		DateCreated:     formatTime(msg.DateCreated),
	}
}

// NewListMessagesResponse creates a ListMessagesResponse from domain Messages.
func NewListMessagesResponse(messages []*domainchat.Message) *ListMessagesResponse {
	data := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		data[i] = NewMessageResponse(msg)
	}
	return &ListMessagesResponse{Messages: data}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
