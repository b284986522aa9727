package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/lotusmall/web-gateway/pkg/util"
)

const limiterIdleEviction = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-client token-bucket limiter keyed by remote IP,
// used on the public write endpoints (login, contact). Idle entries are
// evicted lazily so the map does not grow with one-off visitors.
func RateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	return func(c *fiber.Ctx) error {
		now := time.Now()
		key := c.IP()

		mu.Lock()
		entry, ok := clients[key]
		if !ok {
			entry = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
			}
			clients[key] = entry
		}
		entry.lastSeen = now
		for k, v := range clients {
			if now.Sub(v.lastSeen) > limiterIdleEviction {
				delete(clients, k)
			}
		}
		allowed := entry.limiter.Allow()
		mu.Unlock()

		if !allowed {
			return apperrors.NewTooManyRequests("too many requests, slow down")
		}
		return c.Next()
	}
}
