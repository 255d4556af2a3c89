package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository"
	"github.com/GiannisClipper/payments/internal/validate"
)

var fundFields = []validate.Field{
	{Name: "user", Kind: validate.KindRef, Required: true},
	{Name: "code", Kind: validate.KindString, Required: true, MaxLength: 8},
	{Name: "name", Kind: validate.KindString, Required: true, MaxLength: 128},
}

var fundUniqueGroups = []validate.Group{
	{Fields: []string{"user", "code"}, Key: "code", Message: "Code already exists."},
	{Fields: []string{"user", "name"}, Key: "name", Message: "Name already exists."},
}

// FundService runs the fund write pipeline: normalize, validate fields,
// validate uniqueness, persist.
type FundService struct {
	funds FundStore
	users UserStore
}

func NewFundService(funds FundStore, users UserStore) *FundService {
	return &FundService{funds: funds, users: users}
}

func (s *FundService) Get(ctx context.Context, id uint) (*models.Fund, error) {
	fund, err := s.funds.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "fund"}
		}
		return nil, err
	}
	return fund, nil
}

func (s *FundService) Create(ctx context.Context, in FundInput, principal *models.User) (*models.Fund, error) {
	return s.apply(ctx, &models.Fund{}, in, principal)
}

// Update merges the partial input onto the fund's current values and runs
// the same pipeline as Create, excluding the fund itself from uniqueness
// lookups.
func (s *FundService) Update(ctx context.Context, fund *models.Fund, in FundInput, principal *models.User) (*models.Fund, error) {
	merged := *fund
	return s.apply(ctx, &merged, in, principal)
}

func (s *FundService) Delete(ctx context.Context, fund *models.Fund) error {
	return s.funds.Delete(ctx, fund)
}

func (s *FundService) List(ctx context.Context, crit filter.FundCriteria, principal *models.User) ([]models.Fund, error) {
	userID, err := resolveListUser(ctx, s.users, principal, crit.UserID)
	if err != nil {
		return nil, err
	}
	crit.UserID = userID
	return s.funds.List(ctx, crit)
}

func (s *FundService) apply(ctx context.Context, fund *models.Fund, in FundInput, principal *models.User) (*models.Fund, error) {
	if in.User != nil {
		fund.UserID = *in.User
	}
	if in.Code != nil {
		fund.Code = *in.Code
	}
	if in.Name != nil {
		fund.Name = *in.Name
	}
	fund.Code = strings.TrimSpace(fund.Code)
	fund.Name = strings.TrimSpace(fund.Name)

	userID, err := resolveOwner(ctx, s.users, principal, fund.UserID)
	if err != nil {
		return nil, err
	}
	fund.UserID = userID

	values := map[string]any{
		"user": fund.UserID,
		"code": fund.Code,
		"name": fund.Name,
	}

	errs := validate.Fields(fundFields, values)

	unique, err := validate.Unique(fundUniqueGroups, values, fund.ID, s.exists(ctx))
	if err != nil {
		return nil, err
	}
	errs.Merge(unique)

	if errs.Any() {
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.funds.Save(ctx, fund); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationError(validate.NonFieldKey, "Fund already exists.")
		}
		return nil, err
	}

	return s.funds.FindByID(ctx, fund.ID)
}

func (s *FundService) exists(ctx context.Context) validate.ExistsFunc {
	return func(match map[string]any, excludeID uint) (bool, error) {
		return s.funds.Exists(ctx, match, excludeID)
	}
}
