package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// idleBucketTTL is how long a client IP can stay silent before its
// bucket is dropped, keeping the per-IP map from growing without bound.
const idleBucketTTL = 10 * time.Minute

// tokenBucket tracks one client's remaining allowance. lastSeen doubles
// as the refill anchor and the idle marker for eviction.
type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// take refills the bucket for the time elapsed since the last request
// and consumes one token. When the bucket is empty it returns the whole
// seconds the client must wait before a token becomes available.
func (b *tokenBucket) take(cfg RateLimitConfig, now time.Time) (ok bool, retryAfter int) {
	b.tokens += now.Sub(b.lastSeen).Seconds() * cfg.RequestsPerSecond
	if capacity := float64(cfg.BurstSize); b.tokens > capacity {
		b.tokens = capacity
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if cfg.RequestsPerSecond <= 0 {
		return false, 1
	}
	return false, int(math.Ceil((1 - b.tokens) / cfg.RequestsPerSecond))
}

// rateLimiterStore keeps one bucket per client key and sweeps idle
// buckets as a side effect of normal traffic.
type rateLimiterStore struct {
	cfg       RateLimitConfig
	idleAfter time.Duration

	mu        sync.Mutex
	buckets   map[string]*tokenBucket
	lastSweep time.Time
}

func newRateLimiterStore(cfg RateLimitConfig) *rateLimiterStore {
	return &rateLimiterStore{
		cfg:       cfg,
		idleAfter: idleBucketTTL,
		buckets:   make(map[string]*tokenBucket),
		lastSweep: time.Now(),
	}
}

func (s *rateLimiterStore) take(key string, now time.Time) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.idleAfter {
		s.sweepLocked(now)
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &tokenBucket{tokens: float64(s.cfg.BurstSize), lastSeen: now}
		s.buckets[key] = b
	}
	return b.take(s.cfg, now)
}

func (s *rateLimiterStore) sweepLocked(now time.Time) {
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) > s.idleAfter {
			delete(s.buckets, key)
		}
	}
	s.lastSweep = now
}

// RateLimit limits each client IP to a token bucket refilled at
// cfg.RequestsPerSecond, capped at cfg.BurstSize. Rejected requests get
// a 429 with a Retry-After hint.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := newRateLimiterStore(cfg)
	limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := store.take(c.RealIP(), time.Now())
			c.Response().Header().Set("X-RateLimit-Limit", limit)
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
