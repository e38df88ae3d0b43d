package service

import (
	"strings"
	"sync"
	"time"
)

// LoginRateLimiter limita intentos de login por clave (email normalizado).
type LoginRateLimiter interface {
	Allow(key string) bool
}

type loginRateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string][]time.Time
}

// NewLoginRateLimiter crea un limitador en memoria por ventana deslizante.
func NewLoginRateLimiter(window time.Duration, max int) LoginRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &loginRateLimiter{
		window:  window,
		max:     max,
		entries: make(map[string][]time.Time),
	}
}

func (l *loginRateLimiter) Allow(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	cutoff := now.Add(-l.window)

	recent := l.entries[normalized][:0]
	for _, ts := range l.entries[normalized] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.entries[normalized] = recent
		return false
	}

	l.entries[normalized] = append(recent, now)
	return true
}
