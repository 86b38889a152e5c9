package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// throttleWindow is the window tushare counts quotas over.
const throttleWindow = time.Minute

// Throttle is the interface for client-side rate limiting strategies.
type Throttle interface {
	// Acquire blocks until a request slot is available.
	Acquire(ctx context.Context) error
	// GetWindowCount returns the number of requests in the current window.
	GetWindowCount() int
	// GetRemaining returns remaining requests available in the current window.
	GetRemaining() int
	// Reset clears the throttle state.
	Reset()
}

// SlidingWindowThrottle keeps at most N requests in any one-minute window,
// matching how tushare counts per-minute quotas.
type SlidingWindowThrottle struct {
	mu                sync.Mutex
	requestsPerMinute int
	timestamps        []time.Time
}

// NewSlidingWindowThrottle creates a new sliding window throttle.
// Default is 200 requests per minute, the quota of a basic account.
func NewSlidingWindowThrottle(requestsPerMinute int) *SlidingWindowThrottle {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 200
	}
	return &SlidingWindowThrottle{
		requestsPerMinute: requestsPerMinute,
		timestamps:        make([]time.Time, 0, requestsPerMinute),
	}
}

// Acquire waits until a request slot is available.
func (t *SlidingWindowThrottle) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.mu.Lock()
		now := time.Now()
		windowStart := now.Add(-throttleWindow)

		// Remove timestamps outside the window
		kept := t.timestamps[:0]
		for _, ts := range t.timestamps {
			if ts.After(windowStart) {
				kept = append(kept, ts)
			}
		}
		t.timestamps = kept

		if len(t.timestamps) < t.requestsPerMinute {
			t.timestamps = append(t.timestamps, now)
			t.mu.Unlock()
			return nil
		}

		// Wait until the oldest request leaves the window
		waitTime := t.timestamps[0].Add(throttleWindow).Sub(now)
		t.mu.Unlock()

		if waitTime <= 0 {
			continue
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetWindowCount returns the number of requests in the current one-minute window.
func (t *SlidingWindowThrottle) GetWindowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	windowStart := time.Now().Add(-throttleWindow)
	count := 0
	for _, ts := range t.timestamps {
		if ts.After(windowStart) {
			count++
		}
	}
	return count
}

// GetRemaining returns remaining requests available in the current window.
func (t *SlidingWindowThrottle) GetRemaining() int {
	return max(0, t.requestsPerMinute-t.GetWindowCount())
}

// Reset clears the throttle state.
func (t *SlidingWindowThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timestamps = t.timestamps[:0]
}

// RateLimitThrottle is a token bucket throttle backed by golang.org/x/time/rate.
// It smooths requests out instead of letting a full window's worth through
// at once.
type RateLimitThrottle struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	r       rate.Limit
	burst   int
	count   int
	since   time.Time
}

// NewRateLimitThrottle creates a token bucket throttle allowing r requests
// per second with the given burst.
func NewRateLimitThrottle(r rate.Limit, burst int) *RateLimitThrottle {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitThrottle{
		limiter: rate.NewLimiter(r, burst),
		r:       r,
		burst:   burst,
		since:   time.Now(),
	}
}

// PerMinute converts a per-minute quota to a rate.Limit.
func PerMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(max(n, 1)))
}

// Acquire waits for a token.
func (t *RateLimitThrottle) Acquire(ctx context.Context) error {
	t.mu.Lock()
	limiter := t.limiter
	t.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Since(t.since) >= throttleWindow {
		t.count = 0
		t.since = time.Now()
	}
	t.count++
	return nil
}

// GetWindowCount returns the number of requests granted since the current
// one-minute window started.
func (t *RateLimitThrottle) GetWindowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Since(t.since) >= throttleWindow {
		return 0
	}
	return t.count
}

// GetRemaining returns the number of tokens available right now.
func (t *RateLimitThrottle) GetRemaining() int {
	t.mu.Lock()
	limiter := t.limiter
	t.mu.Unlock()
	return max(0, int(limiter.Tokens()))
}

// Reset refills the bucket and clears the counters.
func (t *RateLimitThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.limiter = rate.NewLimiter(t.r, t.burst)
	t.count = 0
	t.since = time.Now()
}

// NoOpThrottle is a throttle that does nothing (for when throttling is disabled).
type NoOpThrottle struct{}

// NewNoOpThrottle creates a no-op throttle.
func NewNoOpThrottle() *NoOpThrottle {
	return &NoOpThrottle{}
}

// Acquire does nothing and returns immediately.
func (t *NoOpThrottle) Acquire(ctx context.Context) error {
	return nil
}

// GetWindowCount always returns 0.
func (t *NoOpThrottle) GetWindowCount() int {
	return 0
}

// GetRemaining always returns a large number.
func (t *NoOpThrottle) GetRemaining() int {
	return 1000000
}

// Reset does nothing.
func (t *NoOpThrottle) Reset() {}
