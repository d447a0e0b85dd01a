package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Options configures an HS256 signer/verifier.
type Options struct {
	// Issuer written into and required on tokens. Empty means "don't care"
	// when verifying.
	Issuer string

	// Now overrides the clock used for verification. Defaults to time.Now.
	Now func() time.Time
}

var (
	ErrWeakSecret   = errors.New("jwtx: signing secret is empty")
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)
