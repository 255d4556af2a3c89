package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Genre").Preload("Fund").
		First(&payment, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Payment{})
	for field, value := range match {
		q = q.Where(columnFor(field)+" = ?", value)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PaymentRepository) Save(ctx context.Context, payment *models.Payment) error {
	return translate(r.db.WithContext(ctx).Save(payment).Error)
}

func (r *PaymentRepository) Delete(ctx context.Context, payment *models.Payment) error {
	return translate(r.db.WithContext(ctx).Delete(payment).Error)
}

func (r *PaymentRepository) List(ctx context.Context, crit filter.PaymentCriteria) ([]models.Payment, error) {
	q := r.db.WithContext(ctx).
		Preload("User").Preload("Genre").Preload("Fund").
		Order("date, id")
	if crit.UserID != nil {
		q = q.Where("user_id = ?", *crit.UserID)
	}
	if crit.GenreID != nil {
		q = q.Where("genre_id = ?", *crit.GenreID)
	}
	if crit.FundID != nil {
		q = q.Where("fund_id = ?", *crit.FundID)
	}
	if crit.Date.Set {
		if crit.Date.Low != nil {
			q = q.Where("date >= ?", *crit.Date.Low)
		}
		if crit.Date.High != nil {
			q = q.Where("date <= ?", *crit.Date.High)
		}
	}
	q = applyNumberRange(q, "incoming", crit.Incoming)
	q = applyNumberRange(q, "outgoing", crit.Outgoing)
	if crit.Remarks != "" {
		q = q.Where("remarks LIKE ?", "%"+crit.Remarks+"%")
	}

	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func applyNumberRange(q *gorm.DB, column string, r filter.NumberRange) *gorm.DB {
	if !r.Set {
		return q
	}
	if r.Low != nil && r.High != nil && *r.Low == *r.High {
		return q.Where(column+" = ?", *r.Low)
	}
	if r.Low != nil {
		q = q.Where(column+" >= ?", *r.Low)
	}
	if r.High != nil {
		q = q.Where(column+" <= ?", *r.High)
	}
	return q
}
