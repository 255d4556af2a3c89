package models

import (
	"time"
)

// Genre is an income or expense category. It may point to a default fund;
// that fund must belong to the same user as the genre.
type Genre struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:uq_genres_user_code;uniqueIndex:uq_genres_user_name;not null" json:"user_id"`
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Code       string `gorm:"size:8;uniqueIndex:uq_genres_user_code;not null" json:"code"`
	Name       string `gorm:"size:128;uniqueIndex:uq_genres_user_name;not null" json:"name"`
	IsIncoming bool   `gorm:"default:false" json:"is_incoming"`

	FundID *uint `json:"fund_id"`
	Fund   *Fund `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
