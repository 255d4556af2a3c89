package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:128;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"` // bcrypt hash, hidden from JSON
	IsActive bool   `gorm:"default:true" json:"is_active"`
	IsStaff  bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
