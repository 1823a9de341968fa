package model

import (
	"gorm.io/gorm"
)

// School is the top level scoping entity; classes, subjects and chats all
// belong to one.
type School struct {
	gorm.Model

	// Uuid public identifier, "S" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public school id"`

	Name    string `gorm:"column:name;type:varchar(100);not null;comment:school name"`
	Address string `gorm:"column:address;type:varchar(255);comment:postal address"`

	// Status 0=active, 1=archived.
	Status int8 `gorm:"column:status;not null;comment:status, 0 active, 1 archived"`
}

func (School) TableName() string {
	return "school"
}
