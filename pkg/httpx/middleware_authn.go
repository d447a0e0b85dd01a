package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Authenticator resolves a raw access token to a user name.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(token string) (string, error)

func (f AuthenticatorFunc) Authenticate(token string) (string, error) { return f(token) }

// AuthnMiddleware requires a token in the Authorization header. The header
// may carry the bare token or a "Bearer " prefixed one. A missing token is
// answered with 401, an unusable one with 400.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := BearerToken(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "access_denied", "Access Denied")
				return
			}

			name, err := a.Authenticate(raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("token rejected", "err", err)
				WriteError(w, http.StatusBadRequest, "invalid_token", "Invalid Token")
				return
			}

			ctx = WithUserName(ctx, name)
			ctx = slogx.With(ctx, "user", name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(authz) >= 7 && strings.EqualFold(authz[:7], "bearer ") {
		authz = authz[7:]
	}
	return strings.TrimSpace(authz)
}
