package admin

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("admin user not found")

// Table: admin_users
type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:150;not null;uniqueIndex:ux_admin_users_username"`
	Email        string    `gorm:"column:email;size:254"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "admin_users" }
