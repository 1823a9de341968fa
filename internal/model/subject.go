package model

import (
	"gorm.io/gorm"
)

// Subject is a catalog entry scoped to one school. The (school, code) pair
// is unique so a school cannot register the same subject twice.
type Subject struct {
	gorm.Model

	// Uuid public identifier, "J" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public subject id"`

	SchoolUuid string `gorm:"column:school_uuid;type:char(20);not null;uniqueIndex:idx_subject_school_code;comment:owning school"`
	Code       string `gorm:"column:code;type:varchar(20);not null;uniqueIndex:idx_subject_school_code;comment:short code"`
	Name       string `gorm:"column:name;type:varchar(100);not null;comment:subject name"`
}

func (Subject) TableName() string {
	return "subject"
}
