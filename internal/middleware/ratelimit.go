package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/printworks/storefront-server-go/internal/audit"
	"github.com/printworks/storefront-server-go/internal/service"
	"github.com/printworks/storefront-server-go/internal/session"
)

// CartRateLimitMiddleware applies a sliding-window limit per cart
// session. The bucket key carries the token's hash, never the token.
type CartRateLimitMiddleware struct {
	limiter *service.RateLimiter
	limit   int
	window  time.Duration
}

func NewCartRateLimitMiddleware(limiter *service.RateLimiter, limit int, window time.Duration) *CartRateLimitMiddleware {
	return &CartRateLimitMiddleware{
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

func (m *CartRateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := GetCartToken(r.Context())
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionHash := session.Hash(token)
		key := fmt.Sprintf("cart:%s", sessionHash)
		allowed, remaining, resetAt := m.limiter.CheckLimit(r.Context(), key, m.limit, m.window)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventRateLimitExceed,
				Details: map[string]interface{}{"sessionHash": sessionHash},
			})
			w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(resetAt).Seconds())+1))
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "Rate limit exceeded",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
