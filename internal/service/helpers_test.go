package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository/memory"
	"github.com/GiannisClipper/payments/internal/validate"
)

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(hashed, plain string) bool  { return hashed == "hashed:"+plain }

// seedUsers stores an admin and two plain users and returns them in that
// order. IDs are assigned 1, 2, 3.
func seedUsers(t *testing.T, store *memory.Store) (admin, alice, bob *models.User) {
	t.Helper()
	ctx := context.Background()

	admin = &models.User{Username: "admin", Email: "admin@x.gr", Password: "hashed:adminpass", IsActive: true, IsStaff: true}
	alice = &models.User{Username: "alice", Email: "alice@x.gr", Password: "hashed:alicepass", IsActive: true}
	bob = &models.User{Username: "bob", Email: "bob@x.gr", Password: "hashed:bobpass", IsActive: true}

	for _, u := range []*models.User{admin, alice, bob} {
		if err := store.Users().Save(ctx, u); err != nil {
			t.Fatal(err)
		}
	}
	return admin, alice, bob
}

func seedFund(t *testing.T, store *memory.Store, userID uint, code, name string) *models.Fund {
	t.Helper()
	f := &models.Fund{UserID: userID, Code: code, Name: name}
	if err := store.Funds().Save(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	return f
}

func seedGenre(t *testing.T, store *memory.Store, userID uint, code, name string, incoming bool) *models.Genre {
	t.Helper()
	g := &models.Genre{UserID: userID, Code: code, Name: name, IsIncoming: incoming}
	if err := store.Genres().Save(context.Background(), g); err != nil {
		t.Fatal(err)
	}
	return g
}

func wantValidation(t *testing.T, err error) validate.Errors {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want validation error", err)
	}
	return verr.Errors
}

func wantNotFound(t *testing.T, err error) {
	t.Helper()
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func wantForbidden(t *testing.T, err error) {
	t.Helper()
	var fberr *ForbiddenError
	if !errors.As(err, &fberr) {
		t.Fatalf("got %v, want forbidden error", err)
	}
}

func strPtr(s string) *string     { return &s }
func uintPtr(u uint) *uint        { return &u }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
