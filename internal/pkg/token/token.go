// Package token issues and parses the HS256 access tokens used by the HTTP
// API. A token carries the account ID as subject plus a role claim.
package token

import (
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long issued tokens stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned when a token fails parsing, signature
// verification, or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and parses access tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. A zero ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the account with the given role.
func (i *Issuer) Issue(accountID kernel.UUID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies the token signature and expiry, returning the account ID
// and role.
func (i *Issuer) Parse(raw string) (kernel.UUID, string, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return kernel.UUID{}, "", ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, "", ErrInvalidToken
	}

	return accountID, claims.Role, nil
}
