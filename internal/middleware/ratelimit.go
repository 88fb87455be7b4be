package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis, used to slow
// down login-handshake abuse.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// Limit allows at most limit requests per window per client IP for the named
// endpoint group. If Redis is unavailable the request is let through; the
// limiter degrades open rather than taking logins down with it.
func (rl *RateLimiter) Limit(name string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("rate_limit:%s:%s", name, r.RemoteAddr)

			count, err := rl.rdb.Incr(r.Context(), key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rl.rdb.Expire(r.Context(), key, window)
			}

			if count > int64(limit) {
				web.JSON(w, http.StatusTooManyRequests, web.ErrorResponse{Error: "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
