package auth

import (
	"context"
	"errors"

	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository"
	"github.com/GiannisClipper/payments/internal/token"
)

var (
	ErrUserNotFound = errors.New("Token user not exists.")
	ErrUserInactive = errors.New("Token user is not active.")
	ErrTokenExpired = errors.New("Token key is expired.")
)

// UserFinder is the single point read the gate needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// Gate turns an Authorization header into a verified principal. Every
// request re-verifies independently; no session state is kept.
type Gate struct {
	codec *token.Codec
	users UserFinder
}

func NewGate(codec *token.Codec, users UserFinder) *Gate {
	return &Gate{codec: codec, users: users}
}

// Authenticate runs decompose -> decode -> lookup -> active -> expiry,
// failing fast with a distinct error at each step. On success it returns
// the principal together with the raw key, which callers echo back in
// every response.
func (g *Gate) Authenticate(ctx context.Context, header string) (*models.User, string, error) {
	key, err := g.codec.DecomposeHeader(header)
	if err != nil {
		return nil, "", err
	}

	claims, err := g.codec.Verify(key)
	if err != nil {
		return nil, "", err
	}

	user, err := g.users.FindByID(ctx, claims.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, "", ErrUserNotFound
	case err != nil:
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", ErrUserInactive
	}

	if g.codec.Expired(claims) {
		return nil, "", ErrTokenExpired
	}

	return user, key, nil
}

// IsAuthFailure reports whether err is an authentication failure the
// client caused, as opposed to a server-side fault such as a storage
// error during the user lookup.
func IsAuthFailure(err error) bool {
	for _, known := range []error{
		token.ErrHeaderInvalid,
		token.ErrPrefixInvalid,
		token.ErrKeyInvalid,
		ErrUserNotFound,
		ErrUserInactive,
		ErrTokenExpired,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
