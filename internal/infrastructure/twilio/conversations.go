package twilio

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"twilio-demo/server/internal/domain/chat"
)

// conversationResource is the upstream wire representation of a conversation.
type conversationResource struct {
	SID          string    `json:"sid"`
	FriendlyName string    `json:"friendly_name"`
	State        string    `json:"state"`
	DateCreated  time.Time `json:"date_created"`
}

func (r *conversationResource) toDomain() *chat.Conversation {
	return &chat.Conversation{
		SID:          r.SID,
		FriendlyName: r.FriendlyName,
		State:        r.State,
		DateCreated:  r.DateCreated,
	}
}

type conversationPage struct {
	Conversations []conversationResource `json:"conversations"`
}

// chatParticipantResource is the upstream wire representation of a
// conversation participant.
type chatParticipantResource struct {
	SID             string    `json:"sid"`
	ConversationSID string    `json:"conversation_sid"`
	Identity        string    `json:"identity"`
	DateCreated     time.Time `json:"date_created"`
}

func (r *chatParticipantResource) toDomain() *chat.Participant {
	return &chat.Participant{
		SID:             r.SID,
		ConversationSID: r.ConversationSID,
		Identity:        r.Identity,
		DateCreated:     r.DateCreated,
	}
}

type chatParticipantPage struct {
	Participants []chatParticipantResource `json:"participants"`
}

// messageResource is the upstream wire representation of a message.
type messageResource struct {
	SID             string    `json:"sid"`
	ConversationSID string    `json:"conversation_sid"`
	Author          string    `json:"author"`
	Body            string    `json:"body"`
	DateCreated     time.Time `json:"date_created"`
}

func (r *messageResource) toDomain() *chat.Message {
	return &chat.Message{
		SID:             r.SID,
		ConversationSID: r.ConversationSID,
		Author:          r.Author,
		Body:            r.Body,
		DateCreated:     r.DateCreated,
	}
}

type messagePage struct {
	Messages []messageResource `json:"messages"`
}

// CreateConversation creates a conversation, optionally with a friendly name.
func (c *Client) CreateConversation(ctx context.Context, friendlyName string) (*chat.Conversation, error) {
	form := map[string]string{}
	if friendlyName != "" {
		form["FriendlyName"] = friendlyName
	}

	var resource conversationResource
	err := c.do(ctx, apiConversations, "create_conversation", func(req *resty.Request) (*resty.Response, error) {
		return req.SetFormData(form).SetResult(&resource).Post("/Conversations")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// ListConversations returns the current page of conversations.
func (c *Client) ListConversations(ctx context.Context) ([]*chat.Conversation, error) {
	var page conversationPage
	err := c.do(ctx, apiConversations, "list_conversations", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("PageSize", fmt.Sprintf("%d", c.pageSize)).
			SetResult(&page).
			Get("/Conversations")
	})
	if err != nil {
		return nil, err
	}

	conversations := make([]*chat.Conversation, 0, len(page.Conversations))
	for i := range page.Conversations {
		conversations = append(conversations, page.Conversations[i].toDomain())
	}
	return conversations, nil
}

// FetchConversation retrieves a conversation by SID.
func (c *Client) FetchConversation(ctx context.Context, sid string) (*chat.Conversation, error) {
	var resource conversationResource
	err := c.do(ctx, apiConversations, "fetch_conversation", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", sid).
			SetResult(&resource).
			Get("/Conversations/{sid}")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// DeleteConversation removes a conversation by SID.
func (c *Client) DeleteConversation(ctx context.Context, sid string) error {
	return c.do(ctx, apiConversations, "delete_conversation", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", sid).
			Delete("/Conversations/{sid}")
	})
}

// AddParticipant adds an identity to a conversation.
func (c *Client) AddParticipant(ctx context.Context, conversationSID, identity string) (*chat.Participant, error) {
	var resource chatParticipantResource
	err := c.do(ctx, apiConversations, "add_participant", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", conversationSID).
			SetFormData(map[string]string{"Identity": identity}).
			SetResult(&resource).
			Post("/Conversations/{sid}/Participants")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// ListParticipants returns the participants of a conversation.
func (c *Client) ListParticipants(ctx context.Context, conversationSID string) ([]*chat.Participant, error) {
	var page chatParticipantPage
	err := c.do(ctx, apiConversations, "list_participants", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", conversationSID).
			SetResult(&page).
			Get("/Conversations/{sid}/Participants")
	})
	if err != nil {
		return nil, err
	}

	participants := make([]*chat.Participant, 0, len(page.Participants))
	for i := range page.Participants {
		participants = append(participants, page.Participants[i].toDomain())
	}
	return participants, nil
}

// SendMessage posts a message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationSID, author, body string) (*chat.Message, error) {
	var resource messageResource
	err := c.do(ctx, apiConversations, "send_message", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", conversationSID).
			SetFormData(map[string]string{
				"Author": author,
				"Body":   body,
			}).
			SetResult(&resource).
			Post("/Conversations/{sid}/Messages")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// ListMessages returns the current page of messages in a conversation.
func (c *Client) ListMessages(ctx context.Context, conversationSID string) ([]*chat.Message, error) {
	var page messagePage
	err := c.do(ctx, apiConversations, "list_messages", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", conversationSID).
			SetQueryParam("PageSize", fmt.Sprintf("%d", c.pageSize)).
			SetResult(&page).
			Get("/Conversations/{sid}/Messages")
	})
	if err != nil {
		return nil, err
	}

	messages := make([]*chat.Message, 0, len(page.Messages))
	for i := range page.Messages {
		messages = append(messages, page.Messages[i].toDomain())
	}
	return messages, nil
}

// Ensure interface compliance.
var _ chat.API = (*Client)(nil)
