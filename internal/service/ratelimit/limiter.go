package ratelimit

import (
	"sync"
	"time"
)

// staleAfter is how long an idle bucket survives before pruning.
const staleAfter = 10 * time.Minute

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

type Limiter struct {
	mu        sync.Mutex
	m         map[string]*bucket
	lastPrune time.Time
}

func New() *Limiter {
	return &Limiter{m: make(map[string]*bucket), lastPrune: time.Now()}
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(now)

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, refillRate: refillPerSec, last: now}
		l.m[key] = b
	}
	// refill
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens -= 1
		return true
	}
	return false
}

// pruneLocked drops buckets idle past staleAfter. Caller holds mu.
func (l *Limiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < staleAfter {
		return
	}
	for k, b := range l.m {
		if now.Sub(b.last) >= staleAfter {
			delete(l.m, k)
		}
	}
	l.lastPrune = now
}
