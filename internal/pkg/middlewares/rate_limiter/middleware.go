package rate_limiter

import (
	"net/http"
	"strconv"

	"laundry/internal/pkg/middlewares/metrics"
	"laundry/pkg/logger"
)

const tooManyRequestsBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware отвечает 429 с Retry-After, когда в bucket нет токенов.
func Middleware(log middlewareLogger, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := metrics.RouteTemplate(r)
			if rlimiter.Allow() {
				RateLimitDecisionsTotal.WithLabelValues(r.Method, route, outcomeAllowed).Inc()
				next.ServeHTTP(w, r)
				return
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitDecisionsTotal.WithLabelValues(r.Method, route, outcomeRejected).Inc()

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("X-RateLimit-Limit", strconv.FormatFloat(float64(rlimiter.Limit()), 'f', -1, 64))
			w.Header().Set("X-RateLimit-Burst", strconv.Itoa(rlimiter.Burst()))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
