package rate_limiter

import "golang.org/x/time/rate"

// NewLimiter token bucket на qps запросов в секунду; burst <= 0 означает burst = qps.
func NewLimiter(qps, burst int) *rate.Limiter {
	if burst <= 0 {
		burst = qps
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}
