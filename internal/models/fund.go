package models

import (
	"time"
)

// Fund is a money source (cash, bank account, card). Code and name are
// unique per owning user, not globally.
type Fund struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:uq_funds_user_code;uniqueIndex:uq_funds_user_name;not null" json:"user_id"`
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Code string `gorm:"size:8;uniqueIndex:uq_funds_user_code;not null" json:"code"`
	Name string `gorm:"size:128;uniqueIndex:uq_funds_user_name;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
