package twilio

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"twilio-demo/server/internal/domain/video"
)

// roomResource is the upstream wire representation of a video room.
type roomResource struct {
	SID         string    `json:"sid"`
	UniqueName  string    `json:"unique_name"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	DateCreated time.Time `json:"date_created"`
	Duration    int       `json:"duration"`
}

func (r *roomResource) toDomain() *video.Room {
	return &video.Room{
		SID:         r.SID,
		UniqueName:  r.UniqueName,
		Status:      r.Status,
		Type:        r.Type,
		DateCreated: r.DateCreated,
		Duration:    r.Duration,
	}
}

type roomPage struct {
	Rooms []roomResource `json:"rooms"`
}

// roomParticipantResource is the upstream wire representation of a room
// participant.
type roomParticipantResource struct {
	SID         string    `json:"sid"`
	Identity    string    `json:"identity"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"date_created"`
}

func (r *roomParticipantResource) toDomain() *video.Participant {
	return &video.Participant{
		SID:         r.SID,
		Identity:    r.Identity,
		Status:      r.Status,
		DateCreated: r.DateCreated,
	}
}

type roomParticipantPage struct {
	Participants []roomParticipantResource `json:"participants"`
}

// CreateRoom creates a video room with a unique name and type.
func (c *Client) CreateRoom(ctx context.Context, uniqueName, roomType string) (*video.Room, error) {
	var resource roomResource
	err := c.do(ctx, apiVideo, "create_room", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetFormData(map[string]string{
				"UniqueName": uniqueName,
				"Type":       roomType,
			}).
			SetResult(&resource).
			Post("/Rooms")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// ListRooms returns the current page of rooms with the given status.
func (c *Client) ListRooms(ctx context.Context, status string) ([]*video.Room, error) {
	var page roomPage
	err := c.do(ctx, apiVideo, "list_rooms", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("Status", status).
			SetQueryParam("PageSize", fmt.Sprintf("%d", c.pageSize)).
			SetResult(&page).
			Get("/Rooms")
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]*video.Room, 0, len(page.Rooms))
	for i := range page.Rooms {
		rooms = append(rooms, page.Rooms[i].toDomain())
	}
	return rooms, nil
}

// FetchRoom retrieves a room by SID.
func (c *Client) FetchRoom(ctx context.Context, sid string) (*video.Room, error) {
	var resource roomResource
	err := c.do(ctx, apiVideo, "fetch_room", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", sid).
			SetResult(&resource).
			Get("/Rooms/{sid}")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// CompleteRoom transitions a room to the completed status.
func (c *Client) CompleteRoom(ctx context.Context, sid string) (*video.Room, error) {
	var resource roomResource
	err := c.do(ctx, apiVideo, "complete_room", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", sid).
			SetFormData(map[string]string{"Status": video.RoomStatusCompleted}).
			SetResult(&resource).
			Post("/Rooms/{sid}")
	})
	if err != nil {
		return nil, err
	}
	return resource.toDomain(), nil
}

// ListRoomParticipants returns the participants of a room.
func (c *Client) ListRoomParticipants(ctx context.Context, roomSID string) ([]*video.Participant, error) {
	var page roomParticipantPage
	err := c.do(ctx, apiVideo, "list_room_participants", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("sid", roomSID).
			SetResult(&page).
			Get("/Rooms/{sid}/Participants")
	})
	if err != nil {
		return nil, err
	}

	participants := make([]*video.Participant, 0, len(page.Participants))
	for i := range page.Participants {
		participants = append(participants, page.Participants[i].toDomain())
	}
	return participants, nil
}

// Ensure interface compliance.
var _ video.API = (*Client)(nil)
