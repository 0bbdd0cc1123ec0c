package api

import (
	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/interfaces/httpserver/handlers"
)

// Routes holds the /api route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new api routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers all /api routes on the engine.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api")
	RegisterChatRoutes(group, r.handlers.Chat)
	RegisterVideoRoutes(group, r.handlers.Video)
}
