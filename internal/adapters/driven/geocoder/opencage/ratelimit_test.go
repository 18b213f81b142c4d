package opencage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Unthrottled(t *testing.T) {
	r := NewRateLimiter(0)

	for i := 0; i < 100; i++ {
		require.NoError(t, r.Wait(context.Background()))
	}
	assert.False(t, r.InBackoff())
}

func TestRateLimiter_Throttles(t *testing.T) {
	r := NewRateLimiter(20)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(context.Background()))
	}

	// Burst of one: the second and third requests wait ~50ms each.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRateLimiter_BackoffDefault(t *testing.T) {
	r := NewRateLimiter(1)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.Backoff(time.Time{})

	assert.Equal(t, now.Add(DefaultBackoff), r.RetryAt())
	assert.True(t, r.InBackoff())
}

func TestRateLimiter_BackoffNeverShortens(t *testing.T) {
	r := NewRateLimiter(1)
	later := time.Now().Add(time.Hour)

	r.Backoff(later)
	r.Backoff(time.Now().Add(time.Minute))

	assert.Equal(t, later, r.RetryAt())
}

func TestRateLimiter_WaitHonoursContextDuringBackoff(t *testing.T) {
	r := NewRateLimiter(0)
	r.Backoff(time.Now().Add(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_WaitAfterBackoffExpires(t *testing.T) {
	r := NewRateLimiter(0)
	r.Backoff(time.Now().Add(10 * time.Millisecond))

	require.NoError(t, r.Wait(context.Background()))
	assert.False(t, r.InBackoff())
}
