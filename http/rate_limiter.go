package http

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	staleVisitorThreshold = 1 * time.Hour
	visitorSweepInterval  = 30 * time.Minute
)

type visitor struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-IP fixed-window limiter for the calculator
// endpoints, which interactive clients call on every input change.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	window    time.Duration
	visitors  map[string]*visitor
	stopSweep chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		window:    window,
		visitors:  make(map[string]*visitor),
		stopSweep: make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(visitorSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopSweep:
			return
		}
	}
}

// sweep drops visitors that have been idle for longer than the threshold.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastRefill) > staleVisitorThreshold {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) Stop() {
	close(rl.stopSweep)
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[ip]

	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:     rl.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(v.lastRefill) >= rl.window {
		v.tokens = rl.capacity
		v.lastRefill = now
	}

	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// Middleware rejects requests from clients that exhausted their window.
// It satisfies mux.MiddlewareFunc.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.Allow(ip) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
