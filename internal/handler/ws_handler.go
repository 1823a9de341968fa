package handler

import (
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/gateway/websocket"
)

// ServeWs upgrades an authenticated request to a websocket for message
// pushes. The JWT middleware has already identified the caller.
// GET /ws
func ServeWs(c *gin.Context) {
	websocket.Serve(c, c.GetString(currentUserKey))
}
