package opencage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBackoff applies when the API rejects a request for quota reasons
// without saying when to retry.
const DefaultBackoff = 60 * time.Second

// RateLimiter spaces out geocoding requests.
// It uses a token bucket with an additional backoff window after the API
// reports that the quota is exhausted.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with a burst
// of one. A non-positive rate disables the token bucket.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by Backoff.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := retryAt.Sub(r.now()); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// Backoff blocks requests until the given time. A zero time applies
// DefaultBackoff from now. An earlier backoff never shortens a later one.
func (r *RateLimiter) Backoff(until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if until.IsZero() {
		until = r.now().Add(DefaultBackoff)
	}
	if until.After(r.retryAt) {
		r.retryAt = until
	}
}

// RetryAt returns the end of the current backoff window, if any.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}

// InBackoff reports whether requests are currently held back.
func (r *RateLimiter) InBackoff() bool {
	return r.now().Before(r.RetryAt())
}
