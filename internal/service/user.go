package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository"
	"github.com/GiannisClipper/payments/internal/validate"
)

const (
	usernameRequiredToLogin = "A username is required to log in."
	passwordRequiredToLogin = "A password is required to log in."
	userNotFoundToLogin     = "A user with this username and password was not found."
	userDeactivated         = "This user has been deactivated."
	passwordsNotConfirmed   = "Passwords do not match."
)

var userFields = []validate.Field{
	{Name: "username", Kind: validate.KindString, Required: true, MaxLength: 128},
	{Name: "email", Kind: validate.KindString, Required: true, MaxLength: 128, Email: true},
	{Name: "password", Kind: validate.KindString, Required: true, MinLength: 8, MaxLength: 128},
}

var userUniqueGroups = []validate.Group{
	{Fields: []string{"username"}, Key: "username", Message: "Username already exists."},
	{Fields: []string{"email"}, Key: "email", Message: "Email already exists."},
}

// UserService covers signup, signin credential checks and user mutation.
type UserService struct {
	users  UserStore
	hasher auth.PasswordHasher
}

func NewUserService(users UserStore, hasher auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "user"}
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Signup registers a new plain account. The active and staff flags are
// never taken from the payload: self-registration cannot grant admin or
// start deactivated.
func (s *UserService) Signup(ctx context.Context, in UserInput) (*models.User, error) {
	in.IsActive = nil
	in.IsStaff = nil
	user := &models.User{IsActive: true}
	return s.apply(ctx, user, in)
}

// Update merges the partial input onto the user's current values. Only an
// admin principal may flip the active or staff flags.
func (s *UserService) Update(ctx context.Context, user *models.User, in UserInput, principal *models.User) (*models.User, error) {
	if !principal.IsStaff {
		in.IsActive = nil
		in.IsStaff = nil
	}
	merged := *user
	return s.apply(ctx, &merged, in)
}

func (s *UserService) apply(ctx context.Context, user *models.User, in UserInput) (*models.User, error) {
	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		user.IsStaff = *in.IsStaff
	}

	// A password in the payload means a new password; it must be
	// confirmed and replaces the stored hash. Otherwise the stored hash
	// stands in for the field checks.
	newPassword := ""
	if in.Password != nil {
		newPassword = strings.TrimSpace(*in.Password)
	}

	values := map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
	}
	if in.Password != nil || user.Password == "" {
		values["password"] = newPassword
	}

	errs := validate.Fields(userFields, values)

	if newPassword != "" {
		if in.Password2 == nil || strings.TrimSpace(*in.Password2) != newPassword {
			errs.Add("password2", passwordsNotConfirmed)
		}
	}

	unique, err := validate.Unique(userUniqueGroups, values, user.ID, s.exists(ctx))
	if err != nil {
		return nil, err
	}
	errs.Merge(unique)

	if errs.Any() {
		return nil, &ValidationError{Errors: errs}
	}

	if newPassword != "" {
		hashed, err := s.hasher.Hash(newPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationError(validate.NonFieldKey, "User already exists.")
		}
		return nil, err
	}

	return s.users.FindByID(ctx, user.ID)
}

// Authenticate checks signin credentials and returns the user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError(validate.NonFieldKey, usernameRequiredToLogin)
	}
	if password == "" {
		return nil, validationError(validate.NonFieldKey, passwordRequiredToLogin)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validationError(validate.NonFieldKey, userNotFoundToLogin)
		}
		return nil, err
	}
	if !s.hasher.Verify(user.Password, password) {
		return nil, validationError(validate.NonFieldKey, userNotFoundToLogin)
	}
	if !user.IsActive {
		return nil, validationError(validate.NonFieldKey, userDeactivated)
	}

	return user, nil
}

// DeleteSelf hard-deletes the user after an explicit re-authentication:
// the request must carry the matching username and password again.
func (s *UserService) DeleteSelf(ctx context.Context, user *models.User, username, password string) error {
	if strings.TrimSpace(username) != user.Username || !s.hasher.Verify(user.Password, password) {
		return ErrCredentialsMismatch
	}
	return s.users.Delete(ctx, user)
}

// Delete removes another user without re-authentication; reserved for
// admin principals, enforced at the handler.
func (s *UserService) Delete(ctx context.Context, user *models.User) error {
	return s.users.Delete(ctx, user)
}

func (s *UserService) exists(ctx context.Context) validate.ExistsFunc {
	return func(match map[string]any, excludeID uint) (bool, error) {
		return s.users.Exists(ctx, match, excludeID)
	}
}
