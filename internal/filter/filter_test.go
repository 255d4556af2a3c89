package filter

import (
	"testing"
	"time"
)

func TestParseFunds(t *testing.T) {
	crit := ParseFunds([]string{"user_id:3", "code:A C", "name:savings"})

	if crit.UserID == nil || *crit.UserID != 3 {
		t.Errorf("user_id: got %v", crit.UserID)
	}
	if !crit.Code.Set || !crit.Code.Ranged || crit.Code.Low != "A" || crit.Code.High != "C" {
		t.Errorf("code range: got %+v", crit.Code)
	}
	if crit.Name != "savings" {
		t.Errorf("name: got %q", crit.Name)
	}
}

func TestParseFundsEqualityWhenNotRanged(t *testing.T) {
	crit := ParseFunds([]string{"code:A"})

	if crit.Code.Ranged {
		t.Errorf("single value must not be a range: %+v", crit.Code)
	}
	if crit.Code.Low != "A" || crit.Code.High != "A" {
		t.Errorf("got %+v", crit.Code)
	}
}

func TestParsePaymentsDateRange(t *testing.T) {
	crit := ParsePayments([]string{"date:01-03-2024 31-03-2024"})

	if !crit.Date.Set {
		t.Fatal("date range not set")
	}
	wantLow := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantHigh := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	if crit.Date.Low == nil || !crit.Date.Low.Equal(wantLow) {
		t.Errorf("low: got %v, want %v", crit.Date.Low, wantLow)
	}
	if crit.Date.High == nil || !crit.Date.High.Equal(wantHigh) {
		t.Errorf("high: got %v, want %v", crit.Date.High, wantHigh)
	}
}

func TestParsePaymentsOpenEndedRanges(t *testing.T) {
	crit := ParsePayments([]string{"incoming:100 ", "date: 31-12-2024"})

	if crit.Incoming.Low == nil || *crit.Incoming.Low != 100 {
		t.Errorf("incoming low: got %v", crit.Incoming.Low)
	}
	if crit.Incoming.High != nil {
		t.Errorf("incoming high must stay open: got %v", *crit.Incoming.High)
	}
	if crit.Date.Low != nil {
		t.Errorf("date low must stay open: got %v", crit.Date.Low)
	}
	if crit.Date.High == nil {
		t.Error("date high not parsed")
	}
}

func TestParsePaymentsIgnoresUnknownAndMalformed(t *testing.T) {
	crit := ParsePayments([]string{"color:red", "nocolon", ":empty", "remarks:rent"})

	if crit.Remarks != "rent" {
		t.Errorf("remarks: got %q", crit.Remarks)
	}
	if crit.UserID != nil || crit.GenreID != nil || crit.FundID != nil {
		t.Errorf("unknown keys leaked into criteria: %+v", crit)
	}
}

// A filter with an unparsable id matches nothing instead of everything.
func TestParseBadIDReadsAsZero(t *testing.T) {
	crit := ParsePayments([]string{"user_id:abc"})

	if crit.UserID == nil || *crit.UserID != 0 {
		t.Errorf("got %v, want pointer to 0", crit.UserID)
	}
}

func TestParsePaymentsAllKeys(t *testing.T) {
	crit := ParsePayments([]string{
		"user_id:1",
		"genre_id:2",
		"fund_id:3",
		"incoming:10 20",
		"outgoing:5",
	})

	if *crit.UserID != 1 || *crit.GenreID != 2 || *crit.FundID != 3 {
		t.Errorf("ids: %+v", crit)
	}
	if *crit.Incoming.Low != 10 || *crit.Incoming.High != 20 {
		t.Errorf("incoming: %+v", crit.Incoming)
	}
	if *crit.Outgoing.Low != 5 || *crit.Outgoing.High != 5 {
		t.Errorf("outgoing single value must bound both sides: %+v", crit.Outgoing)
	}
}
