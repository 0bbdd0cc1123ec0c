package handlers

import (
	"context"

	"twilio-demo/server/internal/domain/video"
)

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	service video.Service
}

// NewVideoHandler creates a new video handler.
func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// IssueToken mints a video access token bound to a room.
func (h *VideoHandler) IssueToken(ctx context.Context, identity, roomName string) (*video.Token, error) {
	return h.service.IssueToken(ctx, identity, roomName)
}

// CreateRoom creates a video room.
func (h *VideoHandler) CreateRoom(ctx context.Context, uniqueName, roomType string) (*video.Room, error) {
	return h.service.CreateRoom(ctx, uniqueName, roomType)
}

// ListRooms lists rooms by status.
func (h *VideoHandler) ListRooms(ctx context.Context, status string) ([]*video.Room, error) {
	return h.service.ListRooms(ctx, status)
}

// GetRoom retrieves a room by SID.
func (h *VideoHandler) GetRoom(ctx context.Context, sid string) (*video.Room, error) {
	return h.service.GetRoom(ctx, sid)
}

// EndRoom transitions a room to completed.
func (h *VideoHandler) EndRoom(ctx context.Context, sid string) (*video.Room, error) {
	return h.service.EndRoom(ctx, sid)
}

// ListParticipants lists the participants of a room.
func (h *VideoHandler) ListParticipants(ctx context.Context, sid string) ([]*video.Participant, error) {
	return h.service.ListParticipants(ctx, sid)
}
