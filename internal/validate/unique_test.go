package validate

import "testing"

var pairGroups = []Group{
	{Fields: []string{"user", "code"}, Key: "code", Message: "Code already exists."},
	{Fields: []string{"user", "name"}, Key: "name", Message: "Name already exists."},
}

func TestUniqueReportsAllViolatedGroups(t *testing.T) {
	values := map[string]any{"user": uint(1), "code": "A", "name": "Alpha"}

	exists := func(match map[string]any, excludeID uint) (bool, error) {
		return true, nil
	}

	errs, err := Unique(pairGroups, values, 0, exists)
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d keys, want both groups reported: %v", len(errs), errs)
	}
	if errs["code"][0] != "Code already exists." || errs["name"][0] != "Name already exists." {
		t.Fatalf("got %v", errs)
	}
}

func TestUniquePassesExactMatchAndExclusion(t *testing.T) {
	values := map[string]any{"user": uint(1), "code": "A", "name": "Alpha"}

	var seen []map[string]any
	var excludes []uint
	exists := func(match map[string]any, excludeID uint) (bool, error) {
		seen = append(seen, match)
		excludes = append(excludes, excludeID)
		return false, nil
	}

	errs, err := Unique(pairGroups, values, 7, exists)
	if err != nil {
		t.Fatal(err)
	}
	if errs.Any() {
		t.Fatalf("got %v, want no errors", errs)
	}
	if len(seen) != 2 {
		t.Fatalf("got %d lookups, want 2", len(seen))
	}
	if seen[0]["code"] != "A" || seen[0]["user"] != uint(1) {
		t.Errorf("first lookup match: %v", seen[0])
	}
	if seen[1]["name"] != "Alpha" {
		t.Errorf("second lookup match: %v", seen[1])
	}
	for _, id := range excludes {
		if id != 7 {
			t.Errorf("excludeID not forwarded: %v", excludes)
		}
	}
}

func TestErrorsMergeAppendsUnderSameKey(t *testing.T) {
	a := Errors{}
	a.Add("code", "first")

	b := Errors{}
	b.Add("code", "second")
	b.Add("name", "third")

	a.Merge(b)

	if len(a["code"]) != 2 || a["code"][0] != "first" || a["code"][1] != "second" {
		t.Errorf("merge overwrote messages: %v", a)
	}
	if len(a["name"]) != 1 {
		t.Errorf("merge dropped new key: %v", a)
	}
}
