package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowCounter struct {
	start time.Time
	count int
}

// RateLimiter is a fixed-window per-IP request cap. It throttles call
// volume across every route it is mounted on, uniformly.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string]*windowCounter
	now     func() time.Time
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string]*windowCounter),
		now:     time.Now,
	}
}

// Allow records one request for the client and reports whether it fits
// in the current window.
func (l *RateLimiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	wc, ok := l.clients[clientIP]
	if !ok || now.Sub(wc.start) >= l.window {
		l.clients[clientIP] = &windowCounter{start: now, count: 1}
		return true
	}

	wc.count++
	return wc.count <= l.max
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
