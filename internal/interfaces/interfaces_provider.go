package interfaces

import (
	"github.com/google/wire"

	"twilio-demo/server/internal/interfaces/httpserver"
	"twilio-demo/server/internal/interfaces/httpserver/handlers"
	"twilio-demo/server/internal/interfaces/httpserver/routes"
)

// Provider provides all interface-layer components.
var Provider = wire.NewSet(
	handlers.HandlerProvider,
	routes.NewProvider,
	httpserver.New,
)
