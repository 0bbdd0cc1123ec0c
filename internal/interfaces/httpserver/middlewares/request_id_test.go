package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/interfaces/httpserver/middlewares"
	"twilio-demo/server/internal/utils/platformerrors"
)

func newRequestIDRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.RequestID())
	router.GET("/test", handler)
	return router
}

func TestRequestIDPropagatesIncomingHeader(t *testing.T) {
	var seen string
	router := newRequestIDRouter(func(c *gin.Context) {
		seen = middlewares.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middlewares.RequestIDHeader, "req-abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if seen != "req-abc123" {
		t.Errorf("GetRequestID() = %q, want %q", seen, "req-abc123")
	}
	if got := w.Header().Get(middlewares.RequestIDHeader); got != "req-abc123" {
		t.Errorf("response header = %q, want %q", got, "req-abc123")
	}
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	router := newRequestIDRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get(middlewares.RequestIDHeader) == "" {
		t.Error("expected a generated request ID in the response header")
	}
}

func TestRequestIDReachesErrorsFromRequestContext(t *testing.T) {
	var platformErr *platformerrors.PlatformError
	router := newRequestIDRouter(func(c *gin.Context) {
		platformErr = platformerrors.NewError(c.Request.Context(), platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "identity is required", nil)
		c.Status(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middlewares.RequestIDHeader, "req-abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if platformErr == nil {
		t.Fatal("handler did not run")
	}
	if platformErr.RequestID != "req-abc123" {
		t.Errorf("PlatformError.RequestID = %q, want %q", platformErr.RequestID, "req-abc123")
	}
}
