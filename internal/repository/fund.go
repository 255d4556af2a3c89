package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

type FundRepository struct {
	db *gorm.DB
}

func NewFundRepository(db *gorm.DB) *FundRepository {
	return &FundRepository{db: db}
}

func (r *FundRepository) FindByID(ctx context.Context, id uint) (*models.Fund, error) {
	var fund models.Fund
	if err := r.db.WithContext(ctx).Preload("User").First(&fund, id).Error; err != nil {
		return nil, translate(err)
	}
	return &fund, nil
}

func (r *FundRepository) Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Fund{})
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

func (r *FundRepository) Save(ctx context.Context, fund *models.Fund) error {
	return translate(r.db.WithContext(ctx).Save(fund).Error)
}

func (r *FundRepository) Delete(ctx context.Context, fund *models.Fund) error {
	return translate(r.db.WithContext(ctx).Delete(fund).Error)
}

func (r *FundRepository) List(ctx context.Context, crit filter.FundCriteria) ([]models.Fund, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("id")
	if crit.UserID != nil {
		q = q.Where("user_id = ?", *crit.UserID)
	}
	q = applyStringRange(q, "code", crit.Code)
	if crit.Name != "" {
		q = q.Where("name LIKE ?", "%"+crit.Name+"%")
	}

	var funds []models.Fund
	if err := q.Find(&funds).Error; err != nil {
		return nil, err
	}
	return funds, nil
}

func applyStringRange(q *gorm.DB, column string, r filter.StringRange) *gorm.DB {
	if !r.Set {
		return q
	}
	if !r.Ranged {
		return q.Where(column+" = ?", r.Low)
	}
	if r.Low != "" {
		q = q.Where(column+" >= ?", r.Low)
	}
	if r.High != "" {
		q = q.Where(column+" <= ?", r.High)
	}
	return q
}
