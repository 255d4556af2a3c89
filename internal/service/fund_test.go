package service

import (
	"context"
	"testing"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/repository"
	"github.com/GiannisClipper/payments/internal/repository/memory"
	"github.com/GiannisClipper/payments/internal/validate"
)

func newFundService(store *memory.Store) *FundService {
	return NewFundService(store.Funds(), store.Users())
}

func TestFundCreateTrimsAndAssignsOwner(t *testing.T) {
	store := memory.NewStore()
	_, alice, _ := seedUsers(t, store)
	svc := newFundService(store)

	fund, err := svc.Create(context.Background(), FundInput{
		Code: strPtr("  SAV  "),
		Name: strPtr("  Savings account "),
	}, alice)
	if err != nil {
		t.Fatal(err)
	}

	if fund.Code != "SAV" || fund.Name != "Savings account" {
		t.Errorf("values not trimmed: %q %q", fund.Code, fund.Name)
	}
	if fund.UserID != alice.ID {
		t.Errorf("owner not forced to principal: got %d", fund.UserID)
	}
	if fund.User.Username != "alice" {
		t.Errorf("owner not loaded on result: %+v", fund.User)
	}
}

// A non-admin naming another owner is silently overridden, not rejected.
func TestFundCreateIgnoresForeignOwnerForNonAdmin(t *testing.T) {
	store := memory.NewStore()
	_, alice, bob := seedUsers(t, store)
	svc := newFundService(store)

	fund, err := svc.Create(context.Background(), FundInput{
		User: uintPtr(bob.ID),
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, alice)
	if err != nil {
		t.Fatal(err)
	}
	if fund.UserID != alice.ID {
		t.Errorf("got owner %d, want principal %d", fund.UserID, alice.ID)
	}
}

func TestFundCreateAdminAssignsOtherOwner(t *testing.T) {
	store := memory.NewStore()
	admin, alice, _ := seedUsers(t, store)
	svc := newFundService(store)

	fund, err := svc.Create(context.Background(), FundInput{
		User: uintPtr(alice.ID),
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, admin)
	if err != nil {
		t.Fatal(err)
	}
	if fund.UserID != alice.ID {
		t.Errorf("got owner %d, want %d", fund.UserID, alice.ID)
	}
}

func TestFundCreateAdminUnknownOwnerIsNotFound(t *testing.T) {
	store := memory.NewStore()
	admin, _, _ := seedUsers(t, store)
	svc := newFundService(store)

	_, err := svc.Create(context.Background(), FundInput{
		User: uintPtr(99),
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, admin)
	wantNotFound(t, err)
}

func TestFundCreateReportsAllFieldErrors(t *testing.T) {
	store := memory.NewStore()
	admin, _, _ := seedUsers(t, store)
	svc := newFundService(store)

	_, err := svc.Create(context.Background(), FundInput{}, admin)

	errs := wantValidation(t, err)
	for _, key := range []string{"user", "code", "name"} {
		if len(errs[key]) != 1 {
			t.Errorf("missing error for %q: %v", key, errs)
		}
	}
}

func TestFundUniquenessWithinOwner(t *testing.T) {
	store := memory.NewStore()
	_, alice, _ := seedUsers(t, store)
	seedFund(t, store, alice.ID, "SAV", "Savings")
	svc := newFundService(store)

	_, err := svc.Create(context.Background(), FundInput{
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, alice)

	errs := wantValidation(t, err)
	if len(errs) != 2 {
		t.Fatalf("both pair violations must be reported: %v", errs)
	}
	if errs["code"][0] != "Code already exists." || errs["name"][0] != "Name already exists." {
		t.Fatalf("got %v", errs)
	}
}

// Uniqueness is scoped per owner: another user may reuse code and name.
func TestFundUniquenessDoesNotCrossOwners(t *testing.T) {
	store := memory.NewStore()
	_, alice, bob := seedUsers(t, store)
	seedFund(t, store, alice.ID, "SAV", "Savings")
	svc := newFundService(store)

	if _, err := svc.Create(context.Background(), FundInput{
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, bob); err != nil {
		t.Fatalf("other owner's values must not collide: %v", err)
	}
}

func TestFundUpdateExcludesItselfFromUniqueness(t *testing.T) {
	store := memory.NewStore()
	_, alice, _ := seedUsers(t, store)
	fund := seedFund(t, store, alice.ID, "SAV", "Savings")
	svc := newFundService(store)

	updated, err := svc.Update(context.Background(), fund, FundInput{
		Name: strPtr("Savings renamed"),
	}, alice)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Code != "SAV" || updated.Name != "Savings renamed" {
		t.Errorf("partial update broke merge: %q %q", updated.Code, updated.Name)
	}
}

func TestFundUpdateFailureLeavesStoredValues(t *testing.T) {
	store := memory.NewStore()
	_, alice, _ := seedUsers(t, store)
	fund := seedFund(t, store, alice.ID, "SAV", "Savings")
	seedFund(t, store, alice.ID, "CUR", "Current")
	svc := newFundService(store)

	_, err := svc.Update(context.Background(), fund, FundInput{Code: strPtr("CUR")}, alice)
	wantValidation(t, err)

	stored, err := store.Funds().FindByID(context.Background(), fund.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Code != "SAV" {
		t.Errorf("failed update mutated the stored fund: %q", stored.Code)
	}
}

// A duplicate slipping past the pre-check and hitting the constraint is
// reported in the same validation shape, not as a server error.
func TestFundCreateDuplicateRace(t *testing.T) {
	store := memory.NewStore()
	_, alice, _ := seedUsers(t, store)
	svc := newFundService(store)

	store.SaveErr = repository.ErrDuplicate
	_, err := svc.Create(context.Background(), FundInput{
		Code: strPtr("SAV"),
		Name: strPtr("Savings"),
	}, alice)

	errs := wantValidation(t, err)
	if got := errs[validate.NonFieldKey]; len(got) != 1 || got[0] != "Fund already exists." {
		t.Fatalf("got %v", errs)
	}
}

func TestFundListScopesNonAdminToSelf(t *testing.T) {
	store := memory.NewStore()
	_, alice, bob := seedUsers(t, store)
	seedFund(t, store, alice.ID, "SAV", "Savings")
	seedFund(t, store, bob.ID, "CUR", "Current")
	svc := newFundService(store)

	funds, err := svc.List(context.Background(), filter.FundCriteria{}, alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 || funds[0].UserID != alice.ID {
		t.Fatalf("got %d funds, want only alice's", len(funds))
	}
}

func TestFundListForeignUserFilterIsForbidden(t *testing.T) {
	store := memory.NewStore()
	_, alice, bob := seedUsers(t, store)
	svc := newFundService(store)

	_, err := svc.List(context.Background(), filter.FundCriteria{UserID: uintPtr(bob.ID)}, alice)
	wantForbidden(t, err)
}

func TestFundListAdminSeesAllAndCanFilter(t *testing.T) {
	store := memory.NewStore()
	admin, alice, bob := seedUsers(t, store)
	seedFund(t, store, alice.ID, "SAV", "Savings")
	seedFund(t, store, bob.ID, "CUR", "Current")
	svc := newFundService(store)

	all, err := svc.List(context.Background(), filter.FundCriteria{}, admin)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("admin without filter must see all: got %d", len(all))
	}

	scoped, err := svc.List(context.Background(), filter.FundCriteria{UserID: uintPtr(bob.ID)}, admin)
	if err != nil {
		t.Fatal(err)
	}
	if len(scoped) != 1 || scoped[0].UserID != bob.ID {
		t.Fatalf("admin user filter: got %d funds", len(scoped))
	}
}

func TestFundListAdminUnknownUserFilterIsNotFound(t *testing.T) {
	store := memory.NewStore()
	admin, _, _ := seedUsers(t, store)
	svc := newFundService(store)

	_, err := svc.List(context.Background(), filter.FundCriteria{UserID: uintPtr(99)}, admin)
	wantNotFound(t, err)
}

func TestFundGetUnknownIsNotFound(t *testing.T) {
	store := memory.NewStore()
	svc := newFundService(store)

	_, err := svc.Get(context.Background(), 42)
	wantNotFound(t, err)
}
