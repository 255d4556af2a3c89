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

var paymentFields = []validate.Field{
	{Name: "user", Kind: validate.KindRef, Required: true},
	{Name: "date", Kind: validate.KindDate, Required: true},
	{Name: "genre", Kind: validate.KindRef, Required: true},
	{Name: "fund", Kind: validate.KindRef, Required: true},
	{Name: "incoming", Kind: validate.KindNumber, Defaulted: true},
	{Name: "outgoing", Kind: validate.KindNumber, Defaulted: true},
	{Name: "remarks", Kind: validate.KindString, MaxLength: 128},
}

// The whole tuple is unique; the group mixes required and optional fields
// so a violation cannot be pinned on one culprit and goes to the
// non-field key.
var paymentUniqueGroups = []validate.Group{
	{
		Fields:  []string{"user", "date", "genre", "incoming", "outgoing", "fund", "remarks"},
		Key:     validate.NonFieldKey,
		Message: "Payment already exists.",
	},
}

// PaymentService runs the payment write pipeline with ownership integrity
// checks on both the genre and fund references.
type PaymentService struct {
	payments PaymentStore
	genres   GenreStore
	funds    FundStore
	users    UserStore
}

func NewPaymentService(payments PaymentStore, genres GenreStore, funds FundStore, users UserStore) *PaymentService {
	return &PaymentService{payments: payments, genres: genres, funds: funds, users: users}
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "payment"}
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Create(ctx context.Context, in PaymentInput, principal *models.User) (*models.Payment, error) {
	return s.apply(ctx, &models.Payment{}, in, principal)
}

func (s *PaymentService) Update(ctx context.Context, payment *models.Payment, in PaymentInput, principal *models.User) (*models.Payment, error) {
	merged := *payment
	return s.apply(ctx, &merged, in, principal)
}

func (s *PaymentService) Delete(ctx context.Context, payment *models.Payment) error {
	return s.payments.Delete(ctx, payment)
}

func (s *PaymentService) List(ctx context.Context, crit filter.PaymentCriteria, principal *models.User) ([]models.Payment, error) {
	userID, err := resolveListUser(ctx, s.users, principal, crit.UserID)
	if err != nil {
		return nil, err
	}
	crit.UserID = userID
	return s.payments.List(ctx, crit)
}

func (s *PaymentService) apply(ctx context.Context, payment *models.Payment, in PaymentInput, principal *models.User) (*models.Payment, error) {
	if in.User != nil {
		payment.UserID = *in.User
	}
	if in.Date != nil {
		payment.Date = *in.Date
	}
	if in.Genre != nil {
		payment.GenreID = *in.Genre
	}
	if in.Fund != nil {
		payment.FundID = *in.Fund
	}
	// Absent or null amounts coalesce to 0 and remarks to "", keeping the
	// whole-tuple uniqueness comparison well-defined.
	if in.Incoming != nil {
		payment.Incoming = *in.Incoming
	}
	if in.Outgoing != nil {
		payment.Outgoing = *in.Outgoing
	}
	if in.Remarks != nil {
		payment.Remarks = *in.Remarks
	}
	payment.Remarks = strings.TrimSpace(payment.Remarks)

	userID, err := resolveOwner(ctx, s.users, principal, payment.UserID)
	if err != nil {
		return nil, err
	}
	payment.UserID = userID

	values := map[string]any{
		"user":     payment.UserID,
		"date":     payment.Date,
		"genre":    payment.GenreID,
		"fund":     payment.FundID,
		"incoming": payment.Incoming,
		"outgoing": payment.Outgoing,
		"remarks":  payment.Remarks,
	}

	errs := validate.Fields(paymentFields, values)

	unique, err := validate.Unique(paymentUniqueGroups, values, payment.ID, s.exists(ctx))
	if err != nil {
		return nil, err
	}
	errs.Merge(unique)

	var refs []validate.Reference
	if payment.GenreID != 0 {
		genre, err := s.genres.FindByID(ctx, payment.GenreID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			errs.Add("genre", validate.NotFoundMsg("genre"))
		case err != nil:
			return nil, err
		default:
			refs = append(refs, validate.Reference{
				Field:       "genre",
				OwnerID:     genre.UserID,
				WantOwnerID: payment.UserID,
				Resolved:    true,
			})
		}
	}
	if payment.FundID != 0 {
		fund, err := s.funds.FindByID(ctx, payment.FundID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			errs.Add("fund", validate.NotFoundMsg("fund"))
		case err != nil:
			return nil, err
		default:
			refs = append(refs, validate.Reference{
				Field:       "fund",
				OwnerID:     fund.UserID,
				WantOwnerID: payment.UserID,
				Resolved:    true,
			})
		}
	}
	errs.Merge(validate.Ownership(refs))

	if errs.Any() {
		return nil, &ValidationError{Errors: errs}
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationError(validate.NonFieldKey, "Payment already exists.")
		}
		return nil, err
	}

	return s.payments.FindByID(ctx, payment.ID)
}

func (s *PaymentService) exists(ctx context.Context) validate.ExistsFunc {
	return func(match map[string]any, excludeID uint) (bool, error) {
		return s.payments.Exists(ctx, match, excludeID)
	}
}
