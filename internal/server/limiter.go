package server

import (
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// AnalysisLimiter caps concurrent analyses per instance.
// Uses atomic operations for lock-free counting.
type AnalysisLimiter struct {
	current atomic.Int64
	max     int64
}

// NewAnalysisLimiter creates a limiter with the specified maximum concurrency.
func NewAnalysisLimiter(max int64) *AnalysisLimiter {
	return &AnalysisLimiter{max: max}
}

// Acquire attempts to acquire an analysis slot.
// Returns true if successful, false if at capacity.
func (l *AnalysisLimiter) Acquire() bool {
	for {
		current := l.current.Load()
		if current >= l.max {
			return false
		}
		if l.current.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// Release releases an analysis slot.
func (l *AnalysisLimiter) Release() {
	l.current.Add(-1)
}

// Current returns the number of analyses in flight.
func (l *AnalysisLimiter) Current() int64 {
	return l.current.Load()
}

// IPRateLimiter limits upload frequency per client IP.
type IPRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with
// the given burst per IP.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:   make(map[string]*rate.Limiter),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

// Allow reports whether the given IP may make a request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	limiter, ok := l.ips[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.ips[ip] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
