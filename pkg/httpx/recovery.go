package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Recovery turns a panicking handler into a 500 response.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteError(w, http.StatusInternalServerError, "internal_error", "Server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
