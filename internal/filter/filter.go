package filter

import (
	"strconv"
	"strings"
	"time"
)

// List endpoints take repeated ?filters=key:value parameters. A value of
// the form "low high" is a range for ordered keys; either side may be
// empty to leave that side open. Unknown keys are ignored.

// StringRange is an equality match when Low == High, otherwise a
// lexicographic range.
type StringRange struct {
	Low, High string
	Set       bool
	Ranged    bool
}

type NumberRange struct {
	Low, High *float64
	Set       bool
}

type DateRange struct {
	Low, High *time.Time
	Set       bool
}

type FundCriteria struct {
	UserID *uint
	Code   StringRange
	Name   string
}

type GenreCriteria struct {
	UserID *uint
	Code   StringRange
	Name   string
}

type PaymentCriteria struct {
	UserID   *uint
	Date     DateRange
	GenreID  *uint
	FundID   *uint
	Incoming NumberRange
	Outgoing NumberRange
	Remarks  string
}

func ParseFunds(filters []string) FundCriteria {
	var crit FundCriteria
	for _, f := range filters {
		key, value, ok := splitFilter(f)
		if !ok {
			continue
		}
		switch key {
		case "user_id":
			crit.UserID = parseID(value)
		case "code":
			crit.Code = parseStringRange(value)
		case "name":
			crit.Name = value
		}
	}
	return crit
}

func ParseGenres(filters []string) GenreCriteria {
	var crit GenreCriteria
	for _, f := range filters {
		key, value, ok := splitFilter(f)
		if !ok {
			continue
		}
		switch key {
		case "user_id":
			crit.UserID = parseID(value)
		case "code":
			crit.Code = parseStringRange(value)
		case "name":
			crit.Name = value
		}
	}
	return crit
}

func ParsePayments(filters []string) PaymentCriteria {
	var crit PaymentCriteria
	for _, f := range filters {
		key, value, ok := splitFilter(f)
		if !ok {
			continue
		}
		switch key {
		case "user_id":
			crit.UserID = parseID(value)
		case "date":
			crit.Date = parseDateRange(value)
		case "genre_id":
			crit.GenreID = parseID(value)
		case "fund_id":
			crit.FundID = parseID(value)
		case "incoming":
			crit.Incoming = parseNumberRange(value)
		case "outgoing":
			crit.Outgoing = parseNumberRange(value)
		case "remarks":
			crit.Remarks = value
		}
	}
	return crit
}

func splitFilter(s string) (key, value string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// parseID maps an unparsable id to 0, which resolves to no existing user
// and surfaces as not-found or forbidden downstream.
func parseID(s string) *uint {
	id := uint(0)
	if n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32); err == nil {
		id = uint(n)
	}
	return &id
}

func splitRange(s string) (low, high string, ranged bool) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, s, false
}

func parseStringRange(s string) StringRange {
	low, high, ranged := splitRange(s)
	return StringRange{Low: low, High: high, Set: true, Ranged: ranged}
}

func parseNumberRange(s string) NumberRange {
	low, high, _ := splitRange(s)
	return NumberRange{Low: parseFloat(low), High: parseFloat(high), Set: true}
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseDateRange(s string) DateRange {
	low, high, _ := splitRange(s)
	return DateRange{Low: parseDate(low), High: parseDate(high), Set: true}
}

// parseDate accepts the client's DD-MM-YYYY form as well as ISO dates.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"02-01-2006", "2006-01-02"} {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
