package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/domain/video"
	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	"twilio-demo/server/internal/interfaces/httpserver/routes/api"
	"twilio-demo/server/internal/utils/platformerrors"
)

// MockVideoService is a mock implementation of video.Service for testing.
type MockVideoService struct {
	IssueTokenFunc       func(ctx context.Context, identity, roomName string) (*video.Token, error)
	CreateRoomFunc       func(ctx context.Context, uniqueName, roomType string) (*video.Room, error)
	ListRoomsFunc        func(ctx context.Context, status string) ([]*video.Room, error)
	GetRoomFunc          func(ctx context.Context, sid string) (*video.Room, error)
	EndRoomFunc          func(ctx context.Context, sid string) (*video.Room, error)
	ListParticipantsFunc func(ctx context.Context, sid string) ([]*video.Participant, error)
}

func (m *MockVideoService) IssueToken(ctx context.Context, identity, roomName string) (*video.Token, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, identity, roomName)
	}
	return nil, nil
}

func (m *MockVideoService) CreateRoom(ctx context.Context, uniqueName, roomType string) (*video.Room, error) {
	if m.CreateRoomFunc != nil {
		return m.CreateRoomFunc(ctx, uniqueName, roomType)
	}
	return nil, nil
}

func (m *MockVideoService) ListRooms(ctx context.Context, status string) ([]*video.Room, error) {
	if m.ListRoomsFunc != nil {
		return m.ListRoomsFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockVideoService) GetRoom(ctx context.Context, sid string) (*video.Room, error) {
	if m.GetRoomFunc != nil {
		return m.GetRoomFunc(ctx, sid)
	}
	return nil, nil
}

func (m *MockVideoService) EndRoom(ctx context.Context, sid string) (*video.Room, error) {
	if m.EndRoomFunc != nil {
		return m.EndRoomFunc(ctx, sid)
	}
	return nil, nil
}

func (m *MockVideoService) ListParticipants(ctx context.Context, sid string) ([]*video.Participant, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, sid)
	}
	return nil, nil
}

func newVideoRouter(service video.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.RegisterVideoRoutes(router, handlers.NewVideoHandler(service))
	return router
}

func TestIssueVideoTokenRoute(t *testing.T) {
	t.Run("returns token bound to room", func(t *testing.T) {
		router := newVideoRouter(&MockVideoService{
			IssueTokenFunc: func(ctx context.Context, identity, roomName string) (*video.Token, error) {
				return &video.Token{Value: "jwt-value", Identity: identity, RoomName: roomName, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		})

		body := bytes.NewBufferString(`{"identity":"alice","room_name":"daily"}`)
		req := httptest.NewRequest(http.MethodPost, "/video/token", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp struct {
			Token    string `json:"token"`
			Identity string `json:"identity"`
			RoomName string `json:"room_name"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Token != "jwt-value" || resp.Identity != "alice" || resp.RoomName != "daily" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("maps validation error to 400", func(t *testing.T) {
		router := newVideoRouter(&MockVideoService{
			IssueTokenFunc: func(ctx context.Context, identity, roomName string) (*video.Token, error) {
				return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
					platformerrors.ErrorTypeValidation, "room_name is required", nil)
			},
		})

		body := bytes.NewBufferString(`{"identity":"alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/video/token", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCreateRoomRoute(t *testing.T) {
	t.Run("creates room", func(t *testing.T) {
		router := newVideoRouter(&MockVideoService{
			CreateRoomFunc: func(ctx context.Context, uniqueName, roomType string) (*video.Room, error) {
				if uniqueName != "daily" || roomType != "group" {
					t.Errorf("CreateRoom(%q, %q), want (daily, group)", uniqueName, roomType)
				}
				return &video.Room{SID: "RM1", UniqueName: uniqueName, Status: video.RoomStatusInProgress, Type: roomType}, nil
			},
		})

		body := bytes.NewBufferString(`{"room_name":"daily","room_type":"group"}`)
		req := httptest.NewRequest(http.MethodPost, "/video/rooms", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("maps conflict to 409", func(t *testing.T) {
		router := newVideoRouter(&MockVideoService{
			CreateRoomFunc: func(ctx context.Context, uniqueName, roomType string) (*video.Room, error) {
				return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
					platformerrors.ErrorTypeConflict, "room exists", nil)
			},
		})

		body := bytes.NewBufferString(`{"room_name":"daily"}`)
		req := httptest.NewRequest(http.MethodPost, "/video/rooms", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
		}

		var resp struct {
			Error struct {
				Type string `json:"type"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Error.Type != "conflict_error" {
			t.Errorf("error.type = %q, want conflict_error", resp.Error.Type)
		}
	})
}

func TestListRoomsRoute(t *testing.T) {
	router := newVideoRouter(&MockVideoService{
		ListRoomsFunc: func(ctx context.Context, status string) ([]*video.Room, error) {
			if status != "completed" {
				t.Errorf("status = %q, want %q", status, "completed")
			}
			return []*video.Room{{SID: "RM1", Status: status}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/video/rooms?status=completed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Rooms []struct {
			SID string `json:"sid"`
		} `json:"rooms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Rooms) != 1 || resp.Rooms[0].SID != "RM1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestEndRoomRoute(t *testing.T) {
	router := newVideoRouter(&MockVideoService{
		EndRoomFunc: func(ctx context.Context, sid string) (*video.Room, error) {
			return &video.Room{SID: sid, UniqueName: "daily", Status: video.RoomStatusCompleted}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/video/rooms/RM1/end", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		SID     string `json:"sid"`
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SID != "RM1" || resp.Status != video.RoomStatusCompleted || resp.Message != "room ended" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGetRoomRoute(t *testing.T) {
	router := newVideoRouter(&MockVideoService{
		GetRoomFunc: func(ctx context.Context, sid string) (*video.Room, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeNotFound, "room not found", nil)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/video/rooms/RMmissing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
