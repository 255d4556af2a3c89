package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.WithContext(ctx).Preload("User").Preload("Fund").First(&genre, id).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *GenreRepository) Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Genre{})
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

func (r *GenreRepository) Save(ctx context.Context, genre *models.Genre) error {
	return translate(r.db.WithContext(ctx).Save(genre).Error)
}

func (r *GenreRepository) Delete(ctx context.Context, genre *models.Genre) error {
	return translate(r.db.WithContext(ctx).Delete(genre).Error)
}

func (r *GenreRepository) List(ctx context.Context, crit filter.GenreCriteria) ([]models.Genre, error) {
	q := r.db.WithContext(ctx).Preload("User").Preload("Fund").Order("id")
	if crit.UserID != nil {
		q = q.Where("user_id = ?", *crit.UserID)
	}
	q = applyStringRange(q, "code", crit.Code)
	if crit.Name != "" {
		q = q.Where("name LIKE ?", "%"+crit.Name+"%")
	}

	var genres []models.Genre
	if err := q.Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
