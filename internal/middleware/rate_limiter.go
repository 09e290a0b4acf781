package middleware

import (
	"net/http"
	"sync"
	"time"

	"tiendapos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a sliding-window counter keyed by client IP.
type limiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	limit   int
	window  time.Duration
	mensaje string
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		mensaje: mensaje,
	}
	go l.purgeLoop()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit
}

// purgeLoop drops expired IPs so the map does not grow without bound.
func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, entry := range l.entries {
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
		}
		remaining := len(l.entries)
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// RateLimiter limits general API traffic per IP within a sliding window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}
