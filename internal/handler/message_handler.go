package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/service"
	"school_hub_server/pkg/errorx"
)

// MessageHandler handles messages and file attachments.
type MessageHandler struct {
	messageSvc service.MessageService
}

// NewMessageHandler creates the message handler.
func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// SendMessage posts a message into a chat.
// POST /api/chats/:chatId/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.messageSvc.SendMessage(c.Param("chatId"), c.GetString(currentUserKey), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// GetMessageList returns a chat's history, participants only.
// GET /api/chats/:chatId/messages
func (h *MessageHandler) GetMessageList(c *gin.Context) {
	data, err := h.messageSvc.GetMessageList(c.Param("chatId"), c.GetString(currentUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteMessage removes one message, sender only. Replies to it survive
// with their link cleared.
// DELETE /api/messages/:messageId
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageSvc.DeleteMessage(c.Param("messageId"), c.GetString(currentUserKey)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadFile stores an attachment for a chat and returns its descriptor.
// POST /api/chats/:chatId/upload
func (h *MessageHandler) UploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "file is required"))
		return
	}
	data, err := h.messageSvc.UploadFile(c.Param("chatId"), c.GetString(currentUserKey), fh)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// ReadFile streams a previously uploaded attachment, decrypted.
// GET /api/files/:filename
func (h *MessageHandler) ReadFile(c *gin.Context) {
	data, contentType, err := h.messageSvc.ReadFile(c.Param("filename"))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
