package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Chat types.
const (
	ChatTypePrivate = "private"
	ChatTypeGroup   = "group"
)

// PairKey builds the canonical order-independent key for a private chat
// between two users. The unique index on Chat.PairKey is what actually
// enforces "at most one private chat per unordered user pair": two
// concurrent create requests both pass any read check, but only one insert
// survives the constraint.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// Chat is a conversation. Private chats have exactly two participants and a
// PairKey; group chats have any number of participants and a NULL PairKey so
// they never collide on the unique index.
type Chat struct {
	gorm.Model

	// Uuid public identifier, "C" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public chat id"`

	// Type private or group.
	Type string `gorm:"column:type;type:varchar(10);not null;comment:chat type"`

	// Name only meaningful for group chats.
	Name string `gorm:"column:name;type:varchar(50);comment:group name"`

	CreatorUuid string `gorm:"column:creator_uuid;index;type:char(20);not null;comment:creating user"`
	SchoolUuid  string `gorm:"column:school_uuid;index;type:char(20);not null;comment:owning school"`

	// PairKey canonical "min:max" user pair for private chats, NULL for
	// groups. sql.NullString keeps the column nullable so group rows do not
	// collide on the unique index.
	PairKey sql.NullString `gorm:"column:pair_key;uniqueIndex;type:varchar(41);comment:canonical private pair key"`

	// HasAvatar mirrors ChatAvatar existence for cheap checks without a join.
	HasAvatar bool `gorm:"column:has_avatar;not null;default:false;comment:avatar presence flag"`

	// LastMessageAt orders chat lists by recent activity.
	LastMessageAt sql.NullTime `gorm:"column:last_message_at;comment:time of most recent message"`
}

func (Chat) TableName() string {
	return "chat"
}
