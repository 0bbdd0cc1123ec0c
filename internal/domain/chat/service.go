package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"twilio-demo/server/internal/infrastructure/metrics"
	"twilio-demo/server/internal/utils/platformerrors"
)

// Service defines the business operations for the chat side of the API.
type Service interface {
	IssueToken(ctx context.Context, identity string) (*Token, error)
	CreateConversation(ctx context.Context, friendlyName string) (*Conversation, error)
	ListConversations(ctx context.Context) ([]*Conversation, error)
	GetConversation(ctx context.Context, sid string) (*Conversation, error)
	JoinConversation(ctx context.Context, sid, identity string) (*Participant, error)
	JoinConversationByName(ctx context.Context, name, identity string) (*Conversation, error)
	DeleteConversation(ctx context.Context, sid string) error
	ListParticipants(ctx context.Context, sid string) ([]*Participant, error)
	SendMessage(ctx context.Context, sid, author, body string) (*Message, error)
	ListMessages(ctx context.Context, sid string) ([]*Message, error)
}

type service struct {
	api    API
	issuer TokenIssuer
	log    zerolog.Logger
}

// NewService creates a new chat service.
func NewService(api API, issuer TokenIssuer, log zerolog.Logger) Service {
	return &service{
		api:    api,
		issuer: issuer,
		log:    log.With().Str("component", "chat-service").Logger(),
	}
}

func (s *service) IssueToken(ctx context.Context, identity string) (*Token, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "identity is required", nil)
	}

	value, expiresAt, err := s.issuer.ChatToken(identity)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to sign chat token")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, "failed to issue chat token", err)
	}

	metrics.RecordTokenIssued("chat")
	s.log.Info().Str("identity", identity).Msg("chat token issued")

	return &Token{Value: value, Identity: identity, ExpiresAt: expiresAt}, nil
}

func (s *service) CreateConversation(ctx context.Context, friendlyName string) (*Conversation, error) {
	// Let an in-flight upstream call finish even if the caller disconnects.
	ctx = context.WithoutCancel(ctx)

	conv, err := s.api.CreateConversation(ctx, friendlyName)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("conversation_sid", conv.SID).
		Str("friendly_name", conv.FriendlyName).
		Msg("conversation created")
	return conv, nil
}

func (s *service) ListConversations(ctx context.Context) ([]*Conversation, error) {
	return s.api.ListConversations(ctx)
}

func (s *service) GetConversation(ctx context.Context, sid string) (*Conversation, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}
	return s.api.FetchConversation(ctx, sid)
}

func (s *service) JoinConversation(ctx context.Context, sid, identity string) (*Participant, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}
	if strings.TrimSpace(identity) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "identity is required", nil)
	}

	ctx = context.WithoutCancel(ctx)

	participant, err := s.api.AddParticipant(ctx, sid, identity)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("conversation_sid", sid).
		Str("participant_sid", participant.SID).
		Str("identity", identity).
		Msg("participant joined conversation")
	return participant, nil
}

// JoinConversationByName resolves a conversation by friendly name, creating it
// if absent, then adds the identity as a participant. The two steps run
// sequentially under one detached context so a caller disconnect cannot leave
// a half-finished join, and a concurrent create loses the race gracefully by
// resolving the winner's conversation.
func (s *service) JoinConversationByName(ctx context.Context, name, identity string) (*Conversation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_name is required", nil)
	}
	if strings.TrimSpace(identity) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "identity is required", nil)
	}

	ctx = context.WithoutCancel(ctx)

	conv, err := s.resolveOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.api.AddParticipant(ctx, conv.SID, identity); err != nil {
		// Already a participant: the caller still ends up in the conversation.
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
			return nil, err
		}
		s.log.Debug().
			Str("conversation_sid", conv.SID).
			Str("identity", identity).
			Msg("participant already in conversation")
	}

	s.log.Info().
		Str("conversation_sid", conv.SID).
		Str("friendly_name", conv.FriendlyName).
		Str("identity", identity).
		Msg("joined conversation by name")
	return conv, nil
}

func (s *service) resolveOrCreate(ctx context.Context, name string) (*Conversation, error) {
	conv, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	conv, err = s.api.CreateConversation(ctx, name)
	if err == nil {
		return conv, nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
		return nil, err
	}

	// Lost a create race; the winner's conversation is the canonical one.
	conv, lookupErr := s.findByName(ctx, name)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if conv == nil {
		return nil, err
	}
	return conv, nil
}

func (s *service) findByName(ctx context.Context, name string) (*Conversation, error) {
	conversations, err := s.api.ListConversations(ctx)
	if err != nil {
		return nil, err
	}
	for _, conv := range conversations {
		if conv.FriendlyName == name {
			return conv, nil
		}
	}
	return nil, nil
}

// DeleteConversation removes a conversation. Deleting one that is already
// gone counts as success.
func (s *service) DeleteConversation(ctx context.Context, sid string) error {
	if strings.TrimSpace(sid) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}

	ctx = context.WithoutCancel(ctx)

	if err := s.api.DeleteConversation(ctx, sid); err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			s.log.Debug().Str("conversation_sid", sid).Msg("conversation already deleted")
			return nil
		}
		return err
	}

	s.log.Info().Str("conversation_sid", sid).Msg("conversation deleted")
	return nil
}

func (s *service) ListParticipants(ctx context.Context, sid string) ([]*Participant, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}
	return s.api.ListParticipants(ctx, sid)
}

func (s *service) SendMessage(ctx context.Context, sid, author, body string) (*Message, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}
	if strings.TrimSpace(author) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "author is required", nil)
	}
	if body == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "body is required", nil)
	}

	ctx = context.WithoutCancel(ctx)
	return s.api.SendMessage(ctx, sid, author, body)
}

func (s *service) ListMessages(ctx context.Context, sid string) ([]*Message, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "conversation_sid is required", nil)
	}
	return s.api.ListMessages(ctx, sid)
}
