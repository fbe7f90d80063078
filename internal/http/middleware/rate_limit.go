package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minervatires/site-api/internal/http/response"
)

// RateLimiter throttles the public form endpoints per client IP. The
// counter lives in Postgres so the limit survives restarts; on database
// error it fails open.
type RateLimiter struct {
	pool     *pgxpool.Pool
	requests int
	window   time.Duration
}

func NewRateLimiter(pool *pgxpool.Pool, requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		pool:     pool,
		requests: requests,
		window:   window,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ip:" + ClientIP(r)
		if !rl.allow(r.Context(), key) {
			response.Failure(w, http.StatusTooManyRequests, "Too many requests. Try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Keys are hashed so raw addresses never land in the table.
	hashed := fmt.Sprintf("%x", sha256.Sum256([]byte(key)))

	now := time.Now()
	windowStart := now.Add(-rl.window)

	const q = `
		INSERT INTO rate_limits (key, count, window_start, expires_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			count = CASE
				WHEN rate_limits.window_start < $4 THEN 1
				ELSE rate_limits.count + 1
			END,
			window_start = CASE
				WHEN rate_limits.window_start < $4 THEN $2
				ELSE rate_limits.window_start
			END,
			expires_at = $3
		RETURNING count`

	var count int
	if err := rl.pool.QueryRow(ctx, q, hashed, now, now.Add(time.Hour), windowStart).Scan(&count); err != nil {
		return true
	}
	return count <= rl.requests
}
