package video

import "time"

// Room type values accepted by the upstream service.
const (
	RoomTypeGroup      = "group"
	RoomTypeGroupSmall = "group-small"
	RoomTypePeerToPeer = "peer-to-peer"
)

// Room status values used for list filtering.
const (
	RoomStatusInProgress = "in-progress"
	RoomStatusCompleted  = "completed"
	RoomStatusFailed     = "failed"
)

// Room is the canonical upstream representation of a video room.
type Room struct {
	SID         string
	UniqueName  string
	Status      string
	Type        string
	DateCreated time.Time
	// Duration is the room length in seconds, populated once the room ends.
	Duration int
}

// Participant represents a video room participant.
type Participant struct {
	SID         string
	Identity    string
	Status      string
	DateCreated time.Time
}

// Token is a signed access token bound to an identity and a room.
type Token struct {
	Value     string
	Identity  string
	RoomName  string
	ExpiresAt time.Time
}
