package model

import (
	"gorm.io/gorm"
)

// ChatAvatar stores a chat's avatar image inline. There is at most one per
// chat; its existence is mirrored on Chat.HasAvatar so list endpoints never
// need to join this table.
type ChatAvatar struct {
	gorm.Model

	ChatUuid string `gorm:"column:chat_uuid;uniqueIndex;type:char(20);not null;comment:owning chat"`

	// Data raw image bytes; avatars are small so inline storage keeps them
	// transactional with the chat row.
	Data     []byte `gorm:"column:data;type:mediumblob;not null;comment:image bytes"`
	MimeType string `gorm:"column:mime_type;type:varchar(50);not null;comment:image mime type"`
	Size     int64  `gorm:"column:size;not null;comment:image size in bytes"`
}

func (ChatAvatar) TableName() string {
	return "chat_avatar"
}
