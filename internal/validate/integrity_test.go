package validate

import "testing"

func TestOwnershipFlagsForeignReference(t *testing.T) {
	errs := Ownership([]Reference{
		{Field: "genre", OwnerID: 2, WantOwnerID: 1, Resolved: true},
		{Field: "fund", OwnerID: 1, WantOwnerID: 1, Resolved: true},
	})

	if len(errs) != 1 {
		t.Fatalf("got %v, want only the genre error", errs)
	}
	if got := errs["genre"]; len(got) != 1 || got[0] != IntegrityMsg("genre") {
		t.Fatalf("got %v", errs)
	}
}

func TestOwnershipSkipsUnresolvedReference(t *testing.T) {
	errs := Ownership([]Reference{
		{Field: "fund", OwnerID: 0, WantOwnerID: 1, Resolved: false},
	})
	if errs.Any() {
		t.Fatalf("unresolved reference must be skipped: %v", errs)
	}
}
