package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/service"
	"school_hub_server/pkg/errorx"
)

// ChatHandler handles chat identity, membership and group avatars.
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// CreateChat starts a private or group chat. A duplicate private pair
// answers 409 carrying the existing chat id.
// POST /api/chats
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req request.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.CreateChat(c.GetString(currentUserKey), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// FindPrivateChat resolves the private chat between the caller and another
// user, order independent.
// GET /api/chats/private/:userId
func (h *ChatHandler) FindPrivateChat(c *gin.Context) {
	data, err := h.chatSvc.FindPrivateChatBetweenUsers(
		c.GetString(currentUserKey), c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetChatList lists the caller's chats.
// GET /api/chats
func (h *ChatHandler) GetChatList(c *gin.Context) {
	data, err := h.chatSvc.GetChatList(c.GetString(currentUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetChat returns one chat with its members, participants only.
// GET /api/chats/:chatId
func (h *ChatHandler) GetChat(c *gin.Context) {
	data, err := h.chatSvc.GetChat(c.Param("chatId"), c.GetString(currentUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// JoinChat adds the caller to a group chat.
// POST /api/chats/:chatId/join
func (h *ChatHandler) JoinChat(c *gin.Context) {
	if err := h.chatSvc.JoinChat(c.Param("chatId"), c.GetString(currentUserKey)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// LeaveChat removes the caller from a group chat.
// POST /api/chats/:chatId/leave
func (h *ChatHandler) LeaveChat(c *gin.Context) {
	if err := h.chatSvc.LeaveChat(c.Param("chatId"), c.GetString(currentUserKey)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DismissChat deletes a chat, creator only.
// DELETE /api/chats/:chatId
func (h *ChatHandler) DismissChat(c *gin.Context) {
	if err := h.chatSvc.DismissChat(c.Param("chatId"), c.GetString(currentUserKey)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadAvatar sets a group chat's avatar, chat admins only.
// POST /api/chats/:chatId/avatar
func (h *ChatHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "avatar file is required"))
		return
	}
	if err := h.chatSvc.UploadAvatar(c.Param("chatId"), c.GetString(currentUserKey), fh); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetAvatar streams the chat avatar, participants only.
// GET /api/chats/:chatId/avatar
func (h *ChatHandler) GetAvatar(c *gin.Context) {
	avatar, err := h.chatSvc.GetAvatar(c.Param("chatId"), c.GetString(currentUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, avatar.MimeType, avatar.Data)
}

// DeleteAvatar removes the chat avatar, chat admins only.
// DELETE /api/chats/:chatId/avatar
func (h *ChatHandler) DeleteAvatar(c *gin.Context) {
	if err := h.chatSvc.DeleteAvatar(c.Param("chatId"), c.GetString(currentUserKey)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
