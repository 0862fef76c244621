// Package ratelimiter implements a per-identity token bucket.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single identity.
type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	identity   string
	parent     *ClientRateLimiter
}

// ClientRateLimiter manages rate limiting for multiple identities (IPs or
// account ids). Idle buckets expire to keep memory bounded.
type ClientRateLimiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

// New creates a limiter refilling rate tokens per second up to capacity.
func New(rate float64, capacity float64, expirationTime time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (rl *ClientRateLimiter) cleanup(identity string) {
	rl.mu.Lock()
	delete(rl.buckets, identity)
	rl.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.identity)
	})
}

func (rl *ClientRateLimiter) getBucket(identity string) *bucket {
	rl.mu.RLock()
	b, exists := rl.buckets[identity]
	rl.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	b, exists = rl.buckets[identity]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     rl.capacity,
		capacity:   rl.capacity,
		rate:       rl.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     rl,
	}
	rl.buckets[identity] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow checks if a request should be allowed for the given identity.
func (rl *ClientRateLimiter) Allow(identity string) bool {
	return rl.getBucket(identity).allow()
}

// Stop cleans up all expiration timers.
func (rl *ClientRateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for _, b := range rl.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}
