package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ipLimiter token bucket por IP. Las entradas sin uso se purgan cada idleTTL.
type ipLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	clients   map[string]*client
	lastPurge time.Time
}

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ipLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		clients: make(map[string]*client),
	}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPurge) > l.idleTTL {
		for k, cl := range l.clients {
			if now.Sub(cl.seen) > l.idleTTL {
				delete(l.clients, k)
			}
		}
		l.lastPurge = now
	}
	cl, ok := l.clients[ip]
	if !ok {
		cl = &client{lim: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.seen = now
	return cl.lim.AllowN(now, 1)
}

// RateLimit limita las peticiones por IP. rps <= 0 desactiva el límite.
func RateLimit(rps float64, burst int) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	l := newIPLimiter(rps, burst)
	return func(c *fiber.Ctx) error {
		if !l.allow(c.IP(), time.Now()) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return fail(c, fiber.StatusTooManyRequests, CodeRateLimited, "demasiadas peticiones, intente más tarde", nil)
		}
		return c.Next()
	}
}
