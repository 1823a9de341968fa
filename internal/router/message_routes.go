package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes registers message and attachment endpoints. The
// message collection hangs off its chat; deletion addresses the message
// directly.
func (rt *Router) RegisterMessageRoutes(rg *gin.RouterGroup) {
	rg.POST("/chats/:chatId/messages", rt.handlers.Message.SendMessage)
	rg.GET("/chats/:chatId/messages", rt.handlers.Message.GetMessageList)
	rg.POST("/chats/:chatId/upload", rt.handlers.Message.UploadFile)

	rg.DELETE("/messages/:messageId", rt.handlers.Message.DeleteMessage)
	rg.GET("/files/:filename", rt.handlers.Message.ReadFile)
}
