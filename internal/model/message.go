package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Attachment categories derived from the MIME allow-list.
const (
	AttachmentTypeImage    = "image"
	AttachmentTypeDocument = "document"
	AttachmentTypeVideo    = "video"
	AttachmentTypeAudio    = "audio"
)

// Message is one chat message. It must carry text content, an attachment, or
// both; the message service rejects anything with neither.
type Message struct {
	gorm.Model

	// Uuid public identifier, "M" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public message id"`

	ChatUuid   string `gorm:"column:chat_uuid;index;type:char(20);not null;comment:owning chat"`
	SenderUuid string `gorm:"column:sender_uuid;index;type:char(20);not null;comment:sending user"`

	Content string `gorm:"column:content;type:TEXT;comment:message text"`

	HasAttachment bool `gorm:"column:has_attachment;not null;default:false;comment:attachment presence flag"`

	// AttachmentType image, document, video or audio.
	AttachmentType string `gorm:"column:attachment_type;type:varchar(10);comment:attachment category"`
	AttachmentUrl  string `gorm:"column:attachment_url;type:varchar(255);comment:attachment url"`
	AttachmentName string `gorm:"column:attachment_name;type:varchar(255);comment:original filename"`
	AttachmentSize int64  `gorm:"column:attachment_size;comment:attachment size in bytes"`

	// ReplyToUuid references the replied-to message in the same chat.
	// Deleting that message nulls this link on dependents; it never cascades,
	// so replies outlive their target.
	ReplyToUuid sql.NullString `gorm:"column:reply_to_uuid;index;type:char(20);comment:replied-to message id"`
}

func (Message) TableName() string {
	return "message"
}
