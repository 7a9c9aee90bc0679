package httpx

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter — token bucket на каждый IP клиента.
// Записи, не встречавшиеся дольше idle, удаляются при очередном обращении.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter — rps запросов в секунду с запасом burst.
func NewRateLimiter(rps float64, burst int, idle time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	if idle <= 0 {
		idle = 5 * time.Minute
	}
	return &RateLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   rate.Limit(rps),
		burst:   burst,
		idle:    idle,
		now:     time.Now,
	}
}

// Allow — можно ли пропустить запрос клиента key прямо сейчас.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	if now.Sub(rl.lastSweep) >= rl.idle {
		rl.sweepLocked(now)
	}
	e, ok := rl.clients[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = e
	}
	e.lastSeen = now
	rl.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Len — число отслеживаемых клиентов.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for k, e := range rl.clients {
		if now.Sub(e.lastSeen) > rl.idle {
			delete(rl.clients, k)
		}
	}
	rl.lastSweep = now
}

// RateLimitMiddleware — 429 при превышении лимита; nil лимитер пропускает всё.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl != nil && !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
