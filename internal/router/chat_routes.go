package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers chat identity, membership and avatar
// endpoints.
func (rt *Router) RegisterChatRoutes(rg *gin.RouterGroup) {
	chats := rg.Group("/chats")
	{
		chats.POST("", rt.handlers.Chat.CreateChat)
		chats.GET("", rt.handlers.Chat.GetChatList)
		chats.GET("/private/:userId", rt.handlers.Chat.FindPrivateChat)

		chats.GET("/:chatId", rt.handlers.Chat.GetChat)
		chats.DELETE("/:chatId", rt.handlers.Chat.DismissChat)
		chats.POST("/:chatId/join", rt.handlers.Chat.JoinChat)
		chats.POST("/:chatId/leave", rt.handlers.Chat.LeaveChat)

		chats.POST("/:chatId/avatar", rt.handlers.Chat.UploadAvatar)
		chats.GET("/:chatId/avatar", rt.handlers.Chat.GetAvatar)
		chats.DELETE("/:chatId/avatar", rt.handlers.Chat.DeleteAvatar)
	}
}
