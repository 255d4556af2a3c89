package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrHeaderInvalid = errors.New("Token header is not valid.")
	ErrPrefixInvalid = errors.New("Token header prefix is not valid.")
	ErrKeyInvalid    = errors.New("Token key is not valid.")
)

// Claims carry the user id and an explicit expiration timestamp. The
// expiration is a plain unix-seconds float and is deliberately not the
// registered "exp" claim: decoding must succeed for an expired key so
// the authentication gate can report expiry as its own distinct step.
type Claims struct {
	UserID     uint    `json:"user_id"`
	Expiration float64 `json:"expiration"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed bearer tokens and composes/decomposes
// the Authorization header around them.
type Codec struct {
	secret   []byte
	prefix   string
	duration time.Duration
	now      func() time.Time
}

func NewCodec(secret, prefix string, duration time.Duration, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: []byte(secret), prefix: prefix, duration: duration, now: now}
}

// Issue signs a new key for the user, expiring after the configured
// duration.
func (c *Codec) Issue(userID uint) (string, error) {
	claims := &Claims{
		UserID:     userID,
		Expiration: float64(c.now().Unix()) + c.duration.Seconds(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and shape only. Expiration and user existence
// are the caller's explicit follow-up steps.
func (c *Codec) Verify(key string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(key, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !t.Valid {
		return nil, ErrKeyInvalid
	}
	return claims, nil
}

// ComposeHeader builds the Authorization header value for a key.
func (c *Codec) ComposeHeader(key string) string {
	return c.prefix + " " + key
}

// DecomposeHeader extracts the key from an Authorization header. The
// header must split into exactly two fields and the scheme prefix is
// compared case-insensitively.
func (c *Codec) DecomposeHeader(header string) (string, error) {
	parts := strings.Fields(header)

	if len(parts) != 2 {
		return "", ErrHeaderInvalid
	}
	if !strings.EqualFold(parts[0], c.prefix) {
		return "", ErrPrefixInvalid
	}

	return parts[1], nil
}

// Expired reports whether the claims' expiration has passed.
func (c *Codec) Expired(claims *Claims) bool {
	return claims.Expiration <= float64(c.now().Unix())
}
