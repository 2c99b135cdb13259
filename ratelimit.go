package translations

import (
	"context"
	"sync"
	"time"
)

// RateLimiter controls the rate of backend requests using a token bucket.
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60 // Default: 60 RPM
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimiter{
		tokens:     burst, // Start with full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}

		r.mu.Lock()
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
			// Try again
		}
	}
}

// TryAcquire attempts to acquire a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}

	return false
}

// refill adds tokens based on elapsed time (must be called with lock held).
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.lastRefill = now

	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available returns the current number of available tokens.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedSource wraps a Source with request rate limiting, protecting
// the backend from refresh storms (e.g. rapid language switching).
type RateLimitedSource struct {
	source  Source
	limiter *RateLimiter
}

// NewRateLimitedSource creates a new rate-limited source.
func NewRateLimitedSource(source Source, cfg RateLimitConfig) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: NewRateLimiter(cfg),
	}
}

// FetchTranslations implements Source with rate limiting.
func (s *RateLimitedSource) FetchTranslations(ctx context.Context, lang string) (Dictionary, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{
			Language: lang,
			Message:  "rate limit wait cancelled",
			Cause:    err,
		}
	}

	return s.source.FetchTranslations(ctx, lang)
}

// Limiter returns the underlying rate limiter for inspection.
func (s *RateLimitedSource) Limiter() *RateLimiter {
	return s.limiter
}
