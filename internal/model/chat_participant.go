package model

import (
	"gorm.io/gorm"
)

// ChatParticipant joins users to chats. The chat creator is flagged admin at
// creation time. Rows are hard-deleted on leave; there is no soft-delete
// history for membership.
type ChatParticipant struct {
	gorm.Model

	ChatUuid string `gorm:"column:chat_uuid;type:char(20);not null;uniqueIndex:idx_chat_user;comment:chat"`
	UserUuid string `gorm:"column:user_uuid;index;type:char(20);not null;uniqueIndex:idx_chat_user;comment:member user"`

	IsAdmin bool `gorm:"column:is_admin;not null;default:false;comment:chat admin flag"`
}

func (ChatParticipant) TableName() string {
	return "chat_participant"
}
