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

var genreFields = []validate.Field{
	{Name: "user", Kind: validate.KindRef, Required: true},
	{Name: "code", Kind: validate.KindString, Required: true, MaxLength: 8},
	{Name: "name", Kind: validate.KindString, Required: true, MaxLength: 128},
	{Name: "is_incoming", Kind: validate.KindBool},
	{Name: "fund", Kind: validate.KindRef},
}

var genreUniqueGroups = []validate.Group{
	{Fields: []string{"user", "code"}, Key: "code", Message: "Code already exists."},
	{Fields: []string{"user", "name"}, Key: "name", Message: "Name already exists."},
}

// GenreService runs the genre write pipeline, including the ownership
// integrity check of the optional fund reference.
type GenreService struct {
	genres GenreStore
	funds  FundStore
	users  UserStore
}

func NewGenreService(genres GenreStore, funds FundStore, users UserStore) *GenreService {
	return &GenreService{genres: genres, funds: funds, users: users}
}

func (s *GenreService) Get(ctx context.Context, id uint) (*models.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "genre"}
		}
		return nil, err
	}
	return genre, nil
}

func (s *GenreService) Create(ctx context.Context, in GenreInput, principal *models.User) (*models.Genre, error) {
	return s.apply(ctx, &models.Genre{}, in, principal)
}

func (s *GenreService) Update(ctx context.Context, genre *models.Genre, in GenreInput, principal *models.User) (*models.Genre, error) {
	merged := *genre
	return s.apply(ctx, &merged, in, principal)
}

func (s *GenreService) Delete(ctx context.Context, genre *models.Genre) error {
	return s.genres.Delete(ctx, genre)
}

func (s *GenreService) List(ctx context.Context, crit filter.GenreCriteria, principal *models.User) ([]models.Genre, error) {
	userID, err := resolveListUser(ctx, s.users, principal, crit.UserID)
	if err != nil {
		return nil, err
	}
	crit.UserID = userID
	return s.genres.List(ctx, crit)
}

func (s *GenreService) apply(ctx context.Context, genre *models.Genre, in GenreInput, principal *models.User) (*models.Genre, error) {
	if in.User != nil {
		genre.UserID = *in.User
	}
	if in.Code != nil {
		genre.Code = *in.Code
	}
	if in.Name != nil {
		genre.Name = *in.Name
	}
	if in.IsIncoming != nil {
		genre.IsIncoming = *in.IsIncoming
	}
	if in.Fund != nil {
		genre.FundID = in.Fund.ID
	}
	genre.Code = strings.TrimSpace(genre.Code)
	genre.Name = strings.TrimSpace(genre.Name)

	userID, err := resolveOwner(ctx, s.users, principal, genre.UserID)
	if err != nil {
		return nil, err
	}
	genre.UserID = userID

	fundID := uint(0)
	if genre.FundID != nil {
		fundID = *genre.FundID
	}

	values := map[string]any{
		"user":        genre.UserID,
		"code":        genre.Code,
		"name":        genre.Name,
		"is_incoming": genre.IsIncoming,
		"fund":        fundID,
	}

	errs := validate.Fields(genreFields, values)

	unique, err := validate.Unique(genreUniqueGroups, values, genre.ID, s.exists(ctx))
	if err != nil {
		return nil, err
	}
	errs.Merge(unique)

	var refs []validate.Reference
	if fundID != 0 {
		fund, err := s.funds.FindByID(ctx, fundID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			errs.Add("fund", validate.NotFoundMsg("fund"))
		case err != nil:
			return nil, err
		default:
			refs = append(refs, validate.Reference{
				Field:       "fund",
				OwnerID:     fund.UserID,
				WantOwnerID: genre.UserID,
				Resolved:    true,
			})
		}
	}
	errs.Merge(validate.Ownership(refs))

	if errs.Any() {
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.genres.Save(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationError(validate.NonFieldKey, "Genre already exists.")
		}
		return nil, err
	}

	return s.genres.FindByID(ctx, genre.ID)
}

func (s *GenreService) exists(ctx context.Context) validate.ExistsFunc {
	return func(match map[string]any, excludeID uint) (bool, error) {
		return s.genres.Exists(ctx, match, excludeID)
	}
}
