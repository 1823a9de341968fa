// Package model defines the database entities.
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account in the system. Roles are not stored here: they live in
// the user_role relation (see UserRole), and ActiveRole only records which of
// the assigned roles the session currently presents.
type User struct {
	gorm.Model

	// Uuid public identifier, "U" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public user id"`

	Name  string `gorm:"column:name;type:varchar(50);not null;comment:display name"`
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:login email"`

	// Avatar relative URL under the static avatar mount.
	Avatar string `gorm:"column:avatar;type:varchar(255);comment:avatar url"`

	// Password bcrypt hash; never the plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null;comment:password hash"`

	// ActiveRole must be one of the roles assigned in user_role. The role
	// service keeps this consistent on assign/revoke.
	ActiveRole string `gorm:"column:active_role;type:varchar(20);comment:role presented in the current session"`

	// Status 0=active, 1=disabled.
	Status int8 `gorm:"column:status;index;not null;comment:status, 0 active, 1 disabled"`

	// RawPassword receives the plaintext from the API layer and is hashed in
	// BeforeSave. Never persisted.
	RawPassword string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "user"
}

// BeforeSave hashes RawPassword into Password so callers never handle bcrypt
// directly.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
