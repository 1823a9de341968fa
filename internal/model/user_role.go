package model

import (
	"gorm.io/gorm"
)

// Role names assignable through user_role.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// KnownRoles lists every assignable role name.
var KnownRoles = []string{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

// IsKnownRole reports whether name is an assignable role.
func IsKnownRole(name string) bool {
	for _, r := range KnownRoles {
		if r == name {
			return true
		}
	}
	return false
}

// UserRole is one role assignment. A user may hold several, optionally
// scoped to a school or a class (a teacher of one school, a parent tied to a
// class). The unique index makes re-assigning the same scoped role a no-op
// at the database level.
type UserRole struct {
	gorm.Model

	UserUuid string `gorm:"column:user_uuid;index;type:char(20);not null;uniqueIndex:idx_user_role_scope;comment:owning user"`
	Role     string `gorm:"column:role;type:varchar(20);not null;uniqueIndex:idx_user_role_scope;comment:role name"`

	// SchoolUuid/ClassUuid narrow the role's scope; empty means global.
	SchoolUuid string `gorm:"column:school_uuid;type:char(20);uniqueIndex:idx_user_role_scope;comment:school scope"`
	ClassUuid  string `gorm:"column:class_uuid;type:char(20);uniqueIndex:idx_user_role_scope;comment:class scope"`
}

func (UserRole) TableName() string {
	return "user_role"
}
