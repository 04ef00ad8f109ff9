package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, maxFailures int, window, block time.Duration) (*LoginRateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewLoginRateLimiter(maxFailures, window, block)
	limiter.now = clock.Now
	t.Cleanup(limiter.Close)
	return limiter, clock
}

func TestLoginRateLimiter_AllowsUnknownClient(t *testing.T) {
	limiter, _ := newLimiter(t, 3, time.Minute, 5*time.Minute)

	allowed, remaining := limiter.Allow("client1")

	assert.True(t, allowed)
	assert.Zero(t, remaining)
}

func TestLoginRateLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter, _ := newLimiter(t, 3, time.Minute, 5*time.Minute)

	limiter.Fail("client1")
	limiter.Fail("client1")
	allowed, _ := limiter.Allow("client1")
	assert.True(t, allowed)

	limiter.Fail("client1")
	allowed, remaining := limiter.Allow("client1")
	assert.False(t, allowed)
	assert.Equal(t, 5*time.Minute, remaining)

	other, _ := limiter.Allow("client2")
	assert.True(t, other)
}

func TestLoginRateLimiter_RemainingBlockDuration(t *testing.T) {
	limiter, clock := newLimiter(t, 2, time.Minute, 10*time.Minute)

	limiter.Fail("client1")
	limiter.Fail("client1")
	clock.Advance(90 * time.Second)

	allowed, remaining := limiter.Allow("client1")
	assert.False(t, allowed)
	assert.Equal(t, 8*time.Minute+30*time.Second, remaining)
}

func TestLoginRateLimiter_BlockExpires(t *testing.T) {
	limiter, clock := newLimiter(t, 1, time.Minute, 5*time.Minute)

	limiter.Fail("client1")
	clock.Advance(5*time.Minute + time.Second)

	allowed, _ := limiter.Allow("client1")
	assert.True(t, allowed)
}

func TestLoginRateLimiter_FailuresResetAfterWindow(t *testing.T) {
	limiter, clock := newLimiter(t, 3, time.Minute, 5*time.Minute)

	limiter.Fail("client1")
	limiter.Fail("client1")
	clock.Advance(2 * time.Minute)
	limiter.Fail("client1")

	allowed, _ := limiter.Allow("client1")
	assert.True(t, allowed)
}

func TestLoginRateLimiter_Reset(t *testing.T) {
	limiter, _ := newLimiter(t, 1, time.Minute, 5*time.Minute)

	limiter.Fail("client1")
	limiter.Reset("client1")

	allowed, _ := limiter.Allow("client1")
	assert.True(t, allowed)
}

func TestLoginRateLimiter_PruneDropsStaleRecords(t *testing.T) {
	limiter, clock := newLimiter(t, 5, time.Minute, 5*time.Minute)

	limiter.Fail("client1")
	clock.Advance(3 * time.Minute)
	limiter.prune()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.attempts)
}

func TestLoginRateLimiter_CloseIsIdempotent(t *testing.T) {
	limiter := NewLoginRateLimiter(1, time.Minute, time.Minute)
	limiter.Close()
	limiter.Close()
}
