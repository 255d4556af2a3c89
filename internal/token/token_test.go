package token

import (
	"errors"
	"testing"
	"time"
)

func testCodec(now func() time.Time) *Codec {
	return NewCodec("test-secret", "Token", 24*time.Hour, now)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := testCodec(nil)

	key, err := c.Issue(42)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := c.Verify(key)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 {
		t.Errorf("got user id %d, want 42", claims.UserID)
	}
	if c.Expired(claims) {
		t.Error("fresh key reported expired")
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	other := NewCodec("other-secret", "Token", 24*time.Hour, nil)
	key, err := other.Issue(1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := testCodec(nil).Verify(key); !errors.Is(err, ErrKeyInvalid) {
		t.Fatalf("got %v, want ErrKeyInvalid", err)
	}
}

// An expired key must still decode; expiry is reported as a separate
// step so clients see "expired" rather than a generic invalid key.
func TestExpiredKeyStillDecodes(t *testing.T) {
	issued := time.Now()
	c := testCodec(func() time.Time { return issued })

	key, err := c.Issue(7)
	if err != nil {
		t.Fatal(err)
	}

	later := testCodec(func() time.Time { return issued.Add(25 * time.Hour) })
	claims, err := later.Verify(key)
	if err != nil {
		t.Fatalf("expired key failed to decode: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("got user id %d, want 7", claims.UserID)
	}
	if !later.Expired(claims) {
		t.Error("key should be expired after the configured duration")
	}
}

func TestDecomposeHeader(t *testing.T) {
	c := testCodec(nil)

	cases := []struct {
		name   string
		header string
		want   string
		err    error
	}{
		{"valid", "Token abc.def.ghi", "abc.def.ghi", nil},
		{"prefix case-insensitive", "token abc.def.ghi", "abc.def.ghi", nil},
		{"missing key", "Token", "", ErrHeaderInvalid},
		{"extra fields", "Token abc def", "", ErrHeaderInvalid},
		{"empty", "", "", ErrHeaderInvalid},
		{"wrong prefix", "Bearer abc.def.ghi", "", ErrPrefixInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := c.DecomposeHeader(tc.header)
			if !errors.Is(err, tc.err) {
				t.Fatalf("got err %v, want %v", err, tc.err)
			}
			if key != tc.want {
				t.Errorf("got key %q, want %q", key, tc.want)
			}
		})
	}
}

func TestComposeHeaderRoundTrip(t *testing.T) {
	c := testCodec(nil)

	key, err := c.DecomposeHeader(c.ComposeHeader("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if key != "abc" {
		t.Errorf("got %q, want abc", key)
	}
}
