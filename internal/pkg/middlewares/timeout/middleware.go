package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrRequestTimeout причина отмены контекста запроса по таймауту.
var ErrRequestTimeout = errors.New("request timeout exceeded")

func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeoutCause(r.Context(), timeout, ErrRequestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
