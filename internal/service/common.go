package service

import (
	"context"
	"errors"

	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository"
)

// resolveOwner applies the ownership attribution rule shared by every
// write: non-admins always act on their own data regardless of what the
// payload says; an admin-supplied owner must exist, and an unknown one
// aborts the whole pipeline as not-found.
func resolveOwner(ctx context.Context, users UserStore, principal *models.User, ownerID uint) (uint, error) {
	if !principal.IsStaff {
		return principal.ID, nil
	}
	if ownerID != 0 {
		if _, err := users.FindByID(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, &NotFoundError{Resource: "user"}
			}
			return 0, err
		}
	}
	return ownerID, nil
}

// resolveListUser applies the user_id filter rules for list endpoints:
// non-admins are scoped to themselves and asking for another user's data
// is an authorization failure, not a silent substitution; an admin asking
// for a user that does not exist gets not-found.
func resolveListUser(ctx context.Context, users UserStore, principal *models.User, requested *uint) (*uint, error) {
	if !principal.IsStaff {
		if requested != nil && *requested != principal.ID {
			return nil, &ForbiddenError{}
		}
		id := principal.ID
		return &id, nil
	}
	if requested != nil {
		if _, err := users.FindByID(ctx, *requested); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Resource: "user"}
			}
			return nil, err
		}
	}
	return requested, nil
}
