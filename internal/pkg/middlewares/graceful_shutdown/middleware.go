package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"Service is shutting down"}`

// Middleware отклоняет новые запросы с 503, пока сервис останавливается.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(shuttingDownBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
