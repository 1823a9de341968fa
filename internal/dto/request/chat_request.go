package request

// CreateChatRequest starts a conversation. For a private chat ParticipantIds
// holds the one other user; for a group chat, any number of members. The
// creator is implied by the access token and always joins as admin.
type CreateChatRequest struct {
	Name           string   `json:"name" binding:"omitempty,max=50"`
	Type           string   `json:"type" binding:"required,oneof=private group"`
	ParticipantIds []string `json:"participantIds" binding:"required,min=1"`
	SchoolId       string   `json:"schoolId" binding:"required,max=20"`
}

// SendMessageRequest posts a message. Content may be empty only when an
// attachment (uploaded beforehand) is referenced.
type SendMessageRequest struct {
	Content          string `json:"content" binding:"omitempty"`
	AttachmentType   string `json:"attachmentType" binding:"omitempty,oneof=image document video audio"`
	AttachmentUrl    string `json:"attachmentUrl" binding:"omitempty,max=255"`
	AttachmentName   string `json:"attachmentName" binding:"omitempty,max=255"`
	AttachmentSize   int64  `json:"attachmentSize" binding:"omitempty,min=0"`
	ReplyToMessageId string `json:"replyToMessageId" binding:"omitempty,max=20"`
}
