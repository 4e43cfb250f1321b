// Package ratelimit provides per-client request limiting using a token
// bucket per client.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to a burst capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity), // start full
		lastRefill: time.Now(),
	}
}

// allow consumes a token when one is available.
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

// retryAfter estimates how long until a token becomes available.
func (tb *tokenBucket) retryAfter() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if tb.tokens >= 1.0 {
		return 0
	}
	needed := 1.0 - tb.tokens
	return time.Duration(needed / tb.refillRate * float64(time.Second))
}

// Info reports the outcome of a rate limit check.
type Info struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client ID.
type Limiter struct {
	mu         sync.RWMutex
	buckets    map[string]*tokenBucket
	config     *Config
	lastAccess map[string]time.Time
	accessMu   sync.RWMutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter. A nil config enables the defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		defaults := defaultConfig()
		config = &defaults
	}

	l := &Limiter{
		buckets:    make(map[string]*tokenBucket),
		config:     config,
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow checks whether a request from the given client may proceed.
func (l *Limiter) Allow(clientID string) Info {
	if !l.config.Enabled || l.config.Limit <= 0 {
		return Info{Allowed: true}
	}

	bucket := l.getBucket(clientID)

	l.accessMu.Lock()
	l.lastAccess[clientID] = time.Now()
	l.accessMu.Unlock()

	if bucket.allow() {
		return Info{Allowed: true, Limit: l.config.Limit}
	}
	return Info{
		Allowed:    false,
		Limit:      l.config.Limit,
		RetryAfter: bucket.retryAfter(),
	}
}

func (l *Limiter) getBucket(clientID string) *tokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[clientID]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	burst := l.config.Burst
	if burst <= 0 {
		burst = l.config.Limit
	}
	bucket = newTokenBucket(burst, refillRate)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[clientID]; exists {
		return existing
	}
	l.buckets[clientID] = bucket
	return bucket
}

// cleanup evicts buckets idle longer than the cleanup interval.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictStale(time.Now().Add(-l.config.CleanupInterval))
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) evictStale(cutoff time.Time) {
	l.accessMu.Lock()
	var stale []string
	for clientID, last := range l.lastAccess {
		if last.Before(cutoff) {
			stale = append(stale, clientID)
			delete(l.lastAccess, clientID)
		}
	}
	l.accessMu.Unlock()

	if len(stale) == 0 {
		return
	}

	l.mu.Lock()
	for _, clientID := range stale {
		delete(l.buckets, clientID)
	}
	l.mu.Unlock()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
