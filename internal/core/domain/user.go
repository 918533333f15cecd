package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// DefaultRoleID is the role assigned at registration when none is requested.
const DefaultRoleID int64 = 2

// User models an authenticated actor. Every user holds exactly one role.
type User struct {
	UserID       int64     `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	RoleID       int64     `json:"role_id" gorm:"not null"`
	Role         Role      `json:"role" gorm:"foreignKey:RoleID;references:RoleID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Claims is the validated content of a session token.
type Claims struct {
	Username string
	Role     string
}
