package models

import (
	"time"
)

// Payment is a single transaction. Incoming/outgoing default to 0 and
// remarks to "" so the whole-tuple unique index stays well-defined; the
// store's composite uniqueness does not treat two NULLs as equal.
type Payment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:uq_payments_tuple;index:idx_payments_user_date;not null" json:"user_id"`
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Date time.Time `gorm:"type:date;uniqueIndex:uq_payments_tuple;index:idx_payments_user_date;not null" json:"date"`

	GenreID uint  `gorm:"uniqueIndex:uq_payments_tuple;not null" json:"genre_id"`
	Genre   Genre `json:"-" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`

	Incoming float64 `gorm:"uniqueIndex:uq_payments_tuple;not null;default:0" json:"incoming"`
	Outgoing float64 `gorm:"uniqueIndex:uq_payments_tuple;not null;default:0" json:"outgoing"`

	FundID uint `gorm:"uniqueIndex:uq_payments_tuple;not null" json:"fund_id"`
	Fund   Fund `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE"`

	Remarks string `gorm:"size:128;uniqueIndex:uq_payments_tuple;not null;default:''" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
