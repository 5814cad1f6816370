package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

const adminBlockTime = time.Minute

// CreateRateLimiters returns the per-IP limiter for public endpoints and the
// stricter one for admin endpoints.
func (m *Middlewares) CreateRateLimiters() (publicLimiter, adminLimiter func(next http.Handler) http.Handler) {
	publicLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	adminLimiter = NewRateLimiter(m.Log, m.InternalConfig.App.AdminAPIKeyRateLimit, time.Minute, adminBlockTime).Limit
	return publicLimiter, adminLimiter
}
