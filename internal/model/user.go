package model

import (
	"strings"
	"time"
)

// UserRole 使用者角色
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RolePremium UserRole = "premium"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RolePremium:
		return true
	}
	return false
}

// User 使用者模型，CartID 為一對一的購物車
type User struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `json:"last_name" db:"last_name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Age       int       `json:"age" db:"age" validate:"gte=18,lte=120"`
	Role      UserRole  `json:"role" db:"role" validate:"required,oneof=user admin premium"`
	CartID    int       `json:"cart_id" db:"cart_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Normalize email 轉小寫，未指定角色時預設為 user
func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleUser
	}
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
