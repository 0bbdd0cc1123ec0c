package video

import (
	"context"
	"time"
)

// API is the upstream video rooms management client.
type API interface {
	// CreateRoom creates a room with a unique name and type.
	CreateRoom(ctx context.Context, uniqueName, roomType string) (*Room, error)

	// ListRooms returns the current upstream snapshot filtered by status.
	ListRooms(ctx context.Context, status string) ([]*Room, error)

	// FetchRoom retrieves a room by SID.
	FetchRoom(ctx context.Context, sid string) (*Room, error)

	// CompleteRoom transitions a room to the completed status.
	CompleteRoom(ctx context.Context, sid string) (*Room, error)

	// ListRoomParticipants returns the participants of a room.
	ListRoomParticipants(ctx context.Context, roomSID string) ([]*Participant, error)
}

// TokenIssuer mints video access tokens bound to a room.
type TokenIssuer interface {
	VideoToken(identity, roomName string) (value string, expiresAt time.Time, err error)
}
