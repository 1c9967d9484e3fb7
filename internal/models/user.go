package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. The password column holds a bcrypt hash,
// never the raw password. Token is the opaque bearer credential issued at
// login; it stays valid until the next login overwrites it.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     *string        `gorm:"size:100;uniqueIndex:idx_users_username,where:deleted_at IS NULL" json:"username"`
	PasswordHash string         `gorm:"size:100" json:"-"`
	Email        string         `gorm:"size:100" json:"email"`
	Token        *string        `gorm:"type:text;index" json:"-"`
	TokenIssued  *time.Time     `json:"-"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`

	Recipes []Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// UsernameOrEmpty returns the username, or "" when the column is null.
func (u *User) UsernameOrEmpty() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}
