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

	"twilio-demo/server/internal/domain/chat"
	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	"twilio-demo/server/internal/interfaces/httpserver/routes/api"
	"twilio-demo/server/internal/utils/platformerrors"
)

// MockChatService is a mock implementation of chat.Service for testing.
type MockChatService struct {
	IssueTokenFunc             func(ctx context.Context, identity string) (*chat.Token, error)
	CreateConversationFunc     func(ctx context.Context, friendlyName string) (*chat.Conversation, error)
	ListConversationsFunc      func(ctx context.Context) ([]*chat.Conversation, error)
	GetConversationFunc        func(ctx context.Context, sid string) (*chat.Conversation, error)
	JoinConversationFunc       func(ctx context.Context, sid, identity string) (*chat.Participant, error)
	JoinConversationByNameFunc func(ctx context.Context, name, identity string) (*chat.Conversation, error)
	DeleteConversationFunc     func(ctx context.Context, sid string) error
	ListParticipantsFunc       func(ctx context.Context, sid string) ([]*chat.Participant, error)
	SendMessageFunc            func(ctx context.Context, sid, author, body string) (*chat.Message, error)
	ListMessagesFunc           func(ctx context.Context, sid string) ([]*chat.Message, error)
}

func (m *MockChatService) IssueToken(ctx context.Context, identity string) (*chat.Token, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, identity)
	}
	return nil, nil
}

func (m *MockChatService) CreateConversation(ctx context.Context, friendlyName string) (*chat.Conversation, error) {
	if m.CreateConversationFunc != nil {
		return m.CreateConversationFunc(ctx, friendlyName)
	}
	return nil, nil
}

func (m *MockChatService) ListConversations(ctx context.Context) ([]*chat.Conversation, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx)
	}
	return nil, nil
}

func (m *MockChatService) GetConversation(ctx context.Context, sid string) (*chat.Conversation, error) {
	if m.GetConversationFunc != nil {
		return m.GetConversationFunc(ctx, sid)
	}
	return nil, nil
}

func (m *MockChatService) JoinConversation(ctx context.Context, sid, identity string) (*chat.Participant, error) {
	if m.JoinConversationFunc != nil {
		return m.JoinConversationFunc(ctx, sid, identity)
	}
	return nil, nil
}

func (m *MockChatService) JoinConversationByName(ctx context.Context, name, identity string) (*chat.Conversation, error) {
	if m.JoinConversationByNameFunc != nil {
		return m.JoinConversationByNameFunc(ctx, name, identity)
	}
	return nil, nil
}

func (m *MockChatService) DeleteConversation(ctx context.Context, sid string) error {
	if m.DeleteConversationFunc != nil {
		return m.DeleteConversationFunc(ctx, sid)
	}
	return nil
}

func (m *MockChatService) ListParticipants(ctx context.Context, sid string) ([]*chat.Participant, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, sid)
	}
	return nil, nil
}

func (m *MockChatService) SendMessage(ctx context.Context, sid, author, body string) (*chat.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, sid, author, body)
	}
	return nil, nil
}

func (m *MockChatService) ListMessages(ctx context.Context, sid string) ([]*chat.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, sid)
	}
	return nil, nil
}

func newChatRouter(service chat.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.RegisterChatRoutes(router, handlers.NewChatHandler(service))
	return router
}

func validationError(message string) error {
	return platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
		platformerrors.ErrorTypeValidation, message, nil)
}

func TestIssueChatTokenRoute(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		router := newChatRouter(&MockChatService{
			IssueTokenFunc: func(ctx context.Context, identity string) (*chat.Token, error) {
				return &chat.Token{Value: "jwt-value", Identity: identity, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		})

		body := bytes.NewBufferString(`{"identity":"alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/chat/token", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp struct {
			Token    string `json:"token"`
			Identity string `json:"identity"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Token != "jwt-value" || resp.Identity != "alice" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("maps validation error to 400", func(t *testing.T) {
		router := newChatRouter(&MockChatService{
			IssueTokenFunc: func(ctx context.Context, identity string) (*chat.Token, error) {
				return nil, validationError("identity is required")
			},
		})

		body := bytes.NewBufferString(`{"identity":""}`)
		req := httptest.NewRequest(http.MethodPost, "/chat/token", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}

		var resp struct {
			Error struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Error.Type != "validation_error" {
			t.Errorf("error.type = %q, want validation_error", resp.Error.Type)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		router := newChatRouter(&MockChatService{})

		req := httptest.NewRequest(http.MethodPost, "/chat/token", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestCreateConversationRoute(t *testing.T) {
	t.Run("creates with friendly name", func(t *testing.T) {
		router := newChatRouter(&MockChatService{
			CreateConversationFunc: func(ctx context.Context, friendlyName string) (*chat.Conversation, error) {
				if friendlyName != "standup" {
					t.Errorf("friendlyName = %q, want %q", friendlyName, "standup")
				}
				return &chat.Conversation{SID: "CH1", FriendlyName: friendlyName, State: "active"}, nil
			},
		})

		body := bytes.NewBufferString(`{"friendly_name":"standup"}`)
		req := httptest.NewRequest(http.MethodPost, "/chat/conversations", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("allows empty body", func(t *testing.T) {
		router := newChatRouter(&MockChatService{
			CreateConversationFunc: func(ctx context.Context, friendlyName string) (*chat.Conversation, error) {
				if friendlyName != "" {
					t.Errorf("friendlyName = %q, want empty", friendlyName)
				}
				return &chat.Conversation{SID: "CH1", State: "active"}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/chat/conversations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})
}

func TestJoinConversationByNameRoute(t *testing.T) {
	router := newChatRouter(&MockChatService{
		JoinConversationByNameFunc: func(ctx context.Context, name, identity string) (*chat.Conversation, error) {
			if name != "standup" || identity != "alice" {
				t.Errorf("JoinConversationByName(%q, %q), want (standup, alice)", name, identity)
			}
			return &chat.Conversation{SID: "CH1", FriendlyName: name, State: "active"}, nil
		},
	})

	body := bytes.NewBufferString(`{"conversation_name":"standup","identity":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/conversations/join-by-name", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		SID          string `json:"sid"`
		FriendlyName string `json:"friendly_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SID != "CH1" || resp.FriendlyName != "standup" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDeleteConversationRoute(t *testing.T) {
	router := newChatRouter(&MockChatService{
		DeleteConversationFunc: func(ctx context.Context, sid string) error {
			if sid != "CH1" {
				t.Errorf("sid = %q, want %q", sid, "CH1")
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/chat/conversations/CH1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "conversation deleted" {
		t.Errorf("message = %q, want %q", resp.Message, "conversation deleted")
	}
}

func TestListConversationsRoute(t *testing.T) {
	router := newChatRouter(&MockChatService{
		ListConversationsFunc: func(ctx context.Context) ([]*chat.Conversation, error) {
			return []*chat.Conversation{
				{SID: "CH1", FriendlyName: "a", State: "active"},
				{SID: "CH2", FriendlyName: "b", State: "active"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/chat/conversations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Conversations []struct {
			SID string `json:"sid"`
		} `json:"conversations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Conversations) != 2 {
		t.Errorf("len(conversations) = %d, want 2", len(resp.Conversations))
	}
}

func TestSendMessageRoute(t *testing.T) {
	router := newChatRouter(&MockChatService{
		SendMessageFunc: func(ctx context.Context, sid, author, body string) (*chat.Message, error) {
			return &chat.Message{SID: "IM1", ConversationSID: sid, Author: author, Body: body}, nil
		},
	})

	body := bytes.NewBufferString(`{"conversation_sid":"CH1","author":"alice","body":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}
}
