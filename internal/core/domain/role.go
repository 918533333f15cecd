package domain

// Role is a small, mostly-static lookup set (ADMIN, USER). Many users may
// share a role; deleting a role never cascades to users.
type Role struct {
	RoleID      int64  `json:"role_id" gorm:"primaryKey;column:role_id"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}

func (Role) TableName() string { return "roles" }
