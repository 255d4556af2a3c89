package validate

import (
	"strings"
	"testing"
	"time"
)

func TestFieldsReportsEveryMissingRequiredField(t *testing.T) {
	spec := []Field{
		{Name: "user", Kind: KindRef, Required: true},
		{Name: "date", Kind: KindDate, Required: true},
		{Name: "genre", Kind: KindRef, Required: true},
		{Name: "fund", Kind: KindRef, Required: true},
		{Name: "incoming", Kind: KindNumber, Defaulted: true},
		{Name: "remarks", Kind: KindString, MaxLength: 128},
	}
	values := map[string]any{
		"user":     uint(0),
		"date":     time.Time{},
		"genre":    uint(0),
		"fund":     uint(0),
		"incoming": float64(0),
		"remarks":  "",
	}

	errs := Fields(spec, values)

	if len(errs) != 4 {
		t.Fatalf("got %d error keys, want 4: %v", len(errs), errs)
	}
	for _, key := range []string{"user", "date", "genre", "fund"} {
		if len(errs[key]) != 1 {
			t.Errorf("missing required error for %q: %v", key, errs)
		}
	}
	if _, ok := errs["incoming"]; ok {
		t.Errorf("defaulted field must not be required: %v", errs)
	}
}

func TestFieldsWhitespaceOnlyStringIsMissing(t *testing.T) {
	spec := []Field{{Name: "code", Kind: KindString, Required: true, MaxLength: 8}}

	errs := Fields(spec, map[string]any{"code": "   \t "})

	if got := errs["code"]; len(got) != 1 || got[0] != RequiredMsg("code") {
		t.Fatalf("got %v, want required error", errs)
	}
}

func TestFieldsLengthBounds(t *testing.T) {
	spec := []Field{
		{Name: "code", Kind: KindString, Required: true, MaxLength: 8},
		{Name: "password", Kind: KindString, Required: true, MinLength: 8, MaxLength: 128},
	}
	values := map[string]any{
		"code":     strings.Repeat("x", 9),
		"password": "short",
	}

	errs := Fields(spec, values)

	if got := errs["code"]; len(got) != 1 || got[0] != TooLongMsg("code", 8) {
		t.Errorf("code: got %v", got)
	}
	if got := errs["password"]; len(got) != 1 || got[0] != TooShortMsg("password", 8) {
		t.Errorf("password: got %v", got)
	}
}

func TestFieldsEmailShape(t *testing.T) {
	spec := []Field{{Name: "email", Kind: KindString, Required: true, MaxLength: 128, Email: true}}

	errs := Fields(spec, map[string]any{"email": "not-an-address"})
	if got := errs["email"]; len(got) != 1 || got[0] != NotValidMsg("email") {
		t.Fatalf("got %v, want not-valid error", errs)
	}

	errs = Fields(spec, map[string]any{"email": "a@b.co"})
	if errs.Any() {
		t.Fatalf("valid address rejected: %v", errs)
	}
}

func TestFieldsAbsentOptionalFieldIsClean(t *testing.T) {
	spec := []Field{{Name: "fund", Kind: KindRef}}

	errs := Fields(spec, map[string]any{})
	if errs.Any() {
		t.Fatalf("got %v, want no errors", errs)
	}
}

func TestDisplayNameInMessages(t *testing.T) {
	if got := RequiredMsg("is_incoming"); got != "Is incoming is required." {
		t.Errorf("got %q", got)
	}
	if got := IntegrityMsg("fund"); got != "Fund owner integrity error." {
		t.Errorf("got %q", got)
	}
	if got := NotFoundMsg("genre"); got != "Genre not found." {
		t.Errorf("got %q", got)
	}
}
