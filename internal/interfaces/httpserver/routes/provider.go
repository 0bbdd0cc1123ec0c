package routes

import (
	"github.com/gin-gonic/gin"

	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	"twilio-demo/server/internal/interfaces/httpserver/routes/api"
)

// Provider holds all route providers.
type Provider struct {
	API *api.Routes
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		API: api.NewRoutes(handlerProvider),
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.API.Register(engine)
}
