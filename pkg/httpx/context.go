package httpx

import "context"

type ctxKey string

const CtxKeyUserName ctxKey = "user_name"

// WithUserName stores the authenticated user name on ctx.
func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CtxKeyUserName, name)
}

// UserNameFromContext returns the authenticated user name, if any.
func UserNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(CtxKeyUserName).(string)
	return name, ok && name != ""
}
