package respond

// MessageRespond is one chat message.
type MessageRespond struct {
	MessageId        string `json:"messageId"`
	ChatId           string `json:"chatId"`
	SenderId         string `json:"senderId"`
	Content          string `json:"content"`
	HasAttachment    bool   `json:"hasAttachment"`
	AttachmentType   string `json:"attachmentType,omitempty"`
	AttachmentUrl    string `json:"attachmentUrl,omitempty"`
	AttachmentName   string `json:"attachmentName,omitempty"`
	AttachmentSize   int64  `json:"attachmentSize,omitempty"`
	ReplyToMessageId string `json:"replyToMessageId,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// UploadedFileInfo describes a stored attachment.
type UploadedFileInfo struct {
	Filename     string `json:"filename"`
	Originalname string `json:"originalname"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Url          string `json:"url"`
	Type         string `json:"type"`
	IsEncrypted  bool   `json:"isEncrypted"`
}

// UploadFileRespond is the upload endpoint payload.
type UploadFileRespond struct {
	Success bool             `json:"success"`
	File    UploadedFileInfo `json:"file"`
}
