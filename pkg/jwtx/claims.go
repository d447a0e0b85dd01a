package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid. Tokens cannot be
// revoked, so this is also the worst-case exposure window for a leaked one.
const DefaultTokenTTL = time.Hour

// Claims are the claims carried by a taskboard token. The name is the only
// identity the API trusts; everything else is standard JWT bookkeeping.
type Claims struct {
	jwt.RegisteredClaims

	// Name of the authenticated user.
	Name string `json:"name"`
}

// NewClaims builds claims for name valid from now until now+ttl.
func NewClaims(name, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name: name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
