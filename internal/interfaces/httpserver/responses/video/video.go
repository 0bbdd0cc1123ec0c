// Package videores contains HTTP response DTOs for video endpoints.
package videores

import (
	"time"

	domainvideo "twilio-demo/server/internal/domain/video"
)

// TokenResponse represents an issued video token.
type TokenResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
	RoomName string `json:"room_name"`
}

// RoomResponse represents a video room in API responses.
type RoomResponse struct {
	SID         string `json:"sid"`
	UniqueName  string `json:"unique_name"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	DateCreated string `json:"date_created,omitempty"`
	Duration    int    `json:"duration"`
}

// ListRoomsResponse represents the response for listing rooms.
type ListRoomsResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

// EndRoomResponse represents the response for ending a room.
type EndRoomResponse struct {
	SID        string `json:"sid"`
	UniqueName string `json:"unique_name,omitempty"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// ParticipantResponse represents a video room participant.
type ParticipantResponse struct {
	SID         string `json:"sid"`
	Identity    string `json:"identity"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created,omitempty"`
}

// ListParticipantsResponse represents the response for listing room participants.
type ListParticipantsResponse struct {
	Participants []*ParticipantResponse `json:"participants"`
}

// NewTokenResponse creates a TokenResponse from a domain Token.
func NewTokenResponse(token *domainvideo.Token) *TokenResponse {
	return &TokenResponse{
		Token:    token.Value,
		Identity: token.Identity,
		RoomName: token.RoomName,
	}
}

// NewRoomResponse creates a RoomResponse from a domain Room.
func NewRoomResponse(room *domainvideo.Room) *RoomResponse {
	return &RoomResponse{
		SID:         room.SID,
		UniqueName:  room.UniqueName,
		Status:      room.Status,
		Type:        room.Type,
		DateCreated: formatTime(room.DateCreated),
		Duration:    room.Duration,
	}
}

// NewListRoomsResponse creates a ListRoomsResponse from domain Rooms.
func NewListRoomsResponse(rooms []*domainvideo.Room) *ListRoomsResponse {
	data := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		data[i] = NewRoomResponse(room)
	}
	return &ListRoomsResponse{Rooms: data}
}

// NewEndRoomResponse creates an EndRoomResponse from a domain Room.
func NewEndRoomResponse(room *domainvideo.Room) *EndRoomResponse {
	return &EndRoomResponse{
		SID:        room.SID,
		UniqueName: room.UniqueName,
		Status:     room.Status,
		Message:    "room ended",
	}
}

// NewListParticipantsResponse creates a ListParticipantsResponse from domain Participants.
func NewListParticipantsResponse(participants []*domainvideo.Participant) *ListParticipantsResponse {
	data := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		data[i] = &ParticipantResponse{
			SID:         p.SID,
			Identity:    p.Identity,
			Status:      p.Status,
			DateCreated: formatTime(p.DateCreated),
		}
	}
	return &ListParticipantsResponse{Participants: data}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
