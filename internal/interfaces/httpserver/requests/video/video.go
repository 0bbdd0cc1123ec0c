// Package videoreq contains HTTP request DTOs for video endpoints.
package videoreq

// TokenRequest represents the request body for issuing a video token.
type TokenRequest struct {
	Identity string `json:"identity"`
	RoomName string `json:"room_name"`
}

// CreateRoomRequest represents the request body for creating a video room.
type CreateRoomRequest struct {
	RoomName string `json:"room_name"`
	// RoomType is one of "group", "group-small" or "peer-to-peer".
	// Defaults to "group".
	RoomType string `json:"room_type,omitempty"`
}
