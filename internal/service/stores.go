package service

import (
	"context"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

// Per-entity store contracts consumed by the lifecycle services. Match
// maps for Exists are keyed by field name (user, code, name, date, genre,
// incoming, outgoing, fund, remarks, username, email); implementations
// translate to their own columns.

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type FundStore interface {
	FindByID(ctx context.Context, id uint) (*models.Fund, error)
	Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error)
	Save(ctx context.Context, fund *models.Fund) error
	Delete(ctx context.Context, fund *models.Fund) error
	List(ctx context.Context, crit filter.FundCriteria) ([]models.Fund, error)
}

type GenreStore interface {
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error)
	Save(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, genre *models.Genre) error
	List(ctx context.Context, crit filter.GenreCriteria) ([]models.Genre, error)
}

type PaymentStore interface {
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	Exists(ctx context.Context, match map[string]any, excludeID uint) (bool, error)
	Save(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, payment *models.Payment) error
	List(ctx context.Context, crit filter.PaymentCriteria) ([]models.Payment, error)
}
