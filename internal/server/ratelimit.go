package server

import (
	"sync"
	"time"
)

// tokenBucket is a per-client token bucket. Tokens refill at a steady rate up
// to the burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// limiter manages per-client token buckets. Analyses are CPU-bound, so the
// defaults are deliberately modest.
type limiter struct {
	buckets map[string]*tokenBucket
	mu      sync.Mutex

	capacity   int
	refillRate float64
}

func newLimiter(limitPerMinute int) *limiter {
	if limitPerMinute <= 0 {
		limitPerMinute = 60
	}
	return &limiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   limitPerMinute,
		refillRate: float64(limitPerMinute) / 60.0,
	}
}

func (l *limiter) allow(clientID string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.capacity, l.refillRate)
		l.buckets[clientID] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}
