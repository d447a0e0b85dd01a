package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newHS256(t *testing.T, now time.Time) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, jwtx.Options{
		Issuer: "taskboard",
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)
	return h
}

func TestNewHS256RequiresSecret(t *testing.T) {
	_, err := jwtx.NewHS256(nil, jwtx.Options{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewHS256([]byte{}, jwtx.Options{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256RoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	h := newHS256(t, now)
	require.Equal(t, "HS256", h.Alg())

	token, err := h.Sign(jwtx.NewClaims("alice", "", jwtx.DefaultTokenTTL, now))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(token, "."))

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Name)
	require.Equal(t, "taskboard", claims.Issuer, "signer should fill the configured issuer")
	require.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestHS256Expiry(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	token, err := newHS256(t, issued).Sign(jwtx.NewClaims("alice", "", jwtx.DefaultTokenTTL, issued))
	require.NoError(t, err)

	t.Run("expired two hours later", func(t *testing.T) {
		_, err := newHS256(t, time.Now()).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("valid just before expiry", func(t *testing.T) {
		_, err := newHS256(t, issued.Add(59*time.Minute)).Verify(token)
		require.NoError(t, err)
	})

	t.Run("not valid before issuance", func(t *testing.T) {
		_, err := newHS256(t, issued.Add(-time.Minute)).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})
}

func TestHS256RejectsForeignTokens(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	h := newHS256(t, now)

	t.Run("different secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("another-secret"), jwtx.Options{Issuer: "taskboard"})
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewClaims("alice", "", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := h.Sign(jwtx.NewClaims("alice", "", time.Hour, now))
		require.NoError(t, err)
		forged, err := h.Sign(jwtx.NewClaims("mallory", "", time.Hour, now))
		require.NoError(t, err)

		a := strings.Split(token, ".")
		b := strings.Split(forged, ".")
		_, err = h.Verify(a[0] + "." + b[1] + "." + a[2])
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("other algorithm", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtx.NewClaims("alice", "taskboard", time.Hour, now))
		signed, err := tok.SignedString(testSecret)
		require.NoError(t, err)

		_, err = h.Verify(signed)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("unsigned", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewClaims("alice", "taskboard", time.Hour, now))
		signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = h.Verify(signed)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := h.Sign(jwtx.NewClaims("alice", "someone-else", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("definitely.not.a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)

		_, err = h.Verify("")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestHS256RequiresExpiry(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	h := newHS256(t, now)

	c := jwtx.NewClaims("alice", "taskboard", time.Hour, now)
	c.ExpiresAt = nil
	token, err := h.Sign(c)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}
