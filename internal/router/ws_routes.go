package router

import (
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/handler"
)

// RegisterWebSocketRoutes registers the push connection entry. Browsers
// pass the access token as ?token= since the WebSocket API cannot set an
// Authorization header.
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", handler.ServeWs)
}
