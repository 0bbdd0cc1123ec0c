package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"twilio-demo/server/internal/infrastructure/metrics"
	"twilio-demo/server/internal/utils/platformerrors"
)

// Service defines the business operations for the video side of the API.
type Service interface {
	IssueToken(ctx context.Context, identity, roomName string) (*Token, error)
	CreateRoom(ctx context.Context, uniqueName, roomType string) (*Room, error)
	ListRooms(ctx context.Context, status string) ([]*Room, error)
	GetRoom(ctx context.Context, sid string) (*Room, error)
	EndRoom(ctx context.Context, sid string) (*Room, error)
	ListParticipants(ctx context.Context, sid string) ([]*Participant, error)
}

type service struct {
	api    API
	issuer TokenIssuer
	log    zerolog.Logger
}

// NewService creates a new video service.
func NewService(api API, issuer TokenIssuer, log zerolog.Logger) Service {
	return &service{
		api:    api,
		issuer: issuer,
		log:    log.With().Str("component", "video-service").Logger(),
	}
}

func (s *service) IssueToken(ctx context.Context, identity, roomName string) (*Token, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "identity is required", nil)
	}
	if strings.TrimSpace(roomName) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "room_name is required", nil)
	}

	value, expiresAt, err := s.issuer.VideoToken(identity, roomName)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to sign video token")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, "failed to issue video token", err)
	}

	metrics.RecordTokenIssued("video")
	s.log.Info().Str("identity", identity).Str("room_name", roomName).Msg("video token issued")

	return &Token{Value: value, Identity: identity, RoomName: roomName, ExpiresAt: expiresAt}, nil
}

func (s *service) CreateRoom(ctx context.Context, uniqueName, roomType string) (*Room, error) {
	if strings.TrimSpace(uniqueName) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "room_name is required", nil)
	}
	if roomType == "" {
		roomType = RoomTypeGroup
	}
	switch roomType {
	case RoomTypeGroup, RoomTypeGroupSmall, RoomTypePeerToPeer:
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("invalid room_type %q", roomType), nil)
	}

	// Let an in-flight upstream call finish even if the caller disconnects.
	ctx = context.WithoutCancel(ctx)

	room, err := s.api.CreateRoom(ctx, uniqueName, roomType)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("room_sid", room.SID).
		Str("unique_name", room.UniqueName).
		Str("type", room.Type).
		Msg("room created")
	return room, nil
}

func (s *service) ListRooms(ctx context.Context, status string) ([]*Room, error) {
	if status == "" {
		status = RoomStatusInProgress
	}
	switch status {
	case RoomStatusInProgress, RoomStatusCompleted, RoomStatusFailed:
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("invalid status %q", status), nil)
	}
	return s.api.ListRooms(ctx, status)
}

func (s *service) GetRoom(ctx context.Context, sid string) (*Room, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "room_sid is required", nil)
	}
	return s.api.FetchRoom(ctx, sid)
}

// EndRoom completes a room. Ending a room that is already gone counts as
// success and reports the room as completed.
func (s *service) EndRoom(ctx context.Context, sid string) (*Room, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "room_sid is required", nil)
	}

	ctx = context.WithoutCancel(ctx)

	room, err := s.api.CompleteRoom(ctx, sid)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			s.log.Debug().Str("room_sid", sid).Msg("room already gone")
			return &Room{SID: sid, Status: RoomStatusCompleted}, nil
		}
		return nil, err
	}

	s.log.Info().Str("room_sid", room.SID).Str("unique_name", room.UniqueName).Msg("room ended")
	return room, nil
}

func (s *service) ListParticipants(ctx context.Context, sid string) ([]*Participant, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "room_sid is required", nil)
	}
	return s.api.ListRoomParticipants(ctx, sid)
}
