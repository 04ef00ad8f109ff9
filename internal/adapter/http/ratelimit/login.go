package ratelimit

import (
	"sync"
	"time"
)

type AttemptRecord struct {
	Failures     int
	LastFailure  time.Time
	BlockedUntil time.Time
}

// LoginRateLimiter blocks a client after too many failed logins inside a
// window. Successful logins do not count.
type LoginRateLimiter struct {
	mu             sync.Mutex
	attempts       map[string]*AttemptRecord
	maxFailures    int
	windowDuration time.Duration
	blockDuration  time.Duration
	now            func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewLoginRateLimiter(maxFailures int, windowDuration, blockDuration time.Duration) *LoginRateLimiter {
	limiter := &LoginRateLimiter{
		attempts:       make(map[string]*AttemptRecord),
		maxFailures:    maxFailures,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		now:            time.Now,
		stop:           make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

// Allow reports whether clientID may try to log in, and if not, for how long
// it stays blocked.
func (r *LoginRateLimiter) Allow(clientID string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.attempts[clientID]
	if !exists {
		return true, 0
	}
	now := r.now()
	if now.Before(record.BlockedUntil) {
		return false, record.BlockedUntil.Sub(now)
	}
	return true, 0
}

// Fail records a failed login and starts a block once the limit is passed.
func (r *LoginRateLimiter) Fail(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record, exists := r.attempts[clientID]
	if !exists {
		record = &AttemptRecord{}
		r.attempts[clientID] = record
	}

	if now.Sub(record.LastFailure) > r.windowDuration {
		record.Failures = 0
	}
	record.Failures++
	record.LastFailure = now

	if record.Failures >= r.maxFailures {
		record.BlockedUntil = now.Add(r.blockDuration)
		record.Failures = 0
	}
}

func (r *LoginRateLimiter) Reset(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attempts, clientID)
}

// Close stops the cleanup goroutine.
func (r *LoginRateLimiter) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.prune()
		}
	}
}

func (r *LoginRateLimiter) prune() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for clientID, record := range r.attempts {
		if now.Sub(record.LastFailure) > r.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(r.attempts, clientID)
		}
	}
}
