// Package router registers the HTTP API. One file per module, all grouped
// under /api with JWT auth except registration, login and refresh.
package router

import (
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/handler"
	"school_hub_server/internal/infrastructure/middleware"
)

// Router holds the handler aggregate the routes dispatch into.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates a router over the given handlers.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes mounts every module's routes onto the engine.
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	rt.RegisterAuthRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	{
		rt.RegisterUserRoutes(authed)
		rt.RegisterChatRoutes(authed)
		rt.RegisterMessageRoutes(authed)
		rt.RegisterPeriodRoutes(authed)
		rt.RegisterCatalogRoutes(authed)
	}

	// The websocket entry lives outside /api but still behind auth.
	ws := r.Group("")
	ws.Use(middleware.JWTAuth())
	rt.RegisterWebSocketRoutes(ws)
}
