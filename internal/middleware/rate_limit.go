// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/config"
	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/utils"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands each client IP its own token bucket. Buckets idle
// for a few minutes are dropped so the map does not grow with every
// visitor the storefront has ever seen.
type RateLimiter struct {
	clients map[string]*clientBucket
	mtx     sync.Mutex
	rate    rate.Limit
	burst   int
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientBucket),
		rate:    r,
		burst:   burst,
	}

	go rl.evictIdleClients()

	return rl
}

func (rl *RateLimiter) evictIdleClients() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > 3*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) clientFor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.clients[ip] = &clientBucket{limiter, time.Now()}
		return limiter
	}

	client.lastSeen = time.Now()
	return client.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.clientFor(c.ClientIP()).Allow() {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimiters are the storefront's three tiers: a general tier for
// browsing traffic, a tight tier for credential endpoints, and an
// upload tier for admin image uploads.
type RateLimiters struct {
	General gin.HandlerFunc
	Auth    gin.HandlerFunc
	Upload  gin.HandlerFunc
}

func NewRateLimiters(cfg config.RateLimitConfig) *RateLimiters {
	if !cfg.Enabled {
		passthrough := func(c *gin.Context) { c.Next() }
		return &RateLimiters{General: passthrough, Auth: passthrough, Upload: passthrough}
	}

	return &RateLimiters{
		General: NewRateLimiter(rate.Limit(float64(atLeastOne(cfg.GeneralPerSecond))), atLeastOne(cfg.GeneralBurst)).Middleware(),
		Auth:    NewRateLimiter(perMinute(cfg.AuthPerMinute), atLeastOne(cfg.AuthPerMinute)).Middleware(),
		Upload:  NewRateLimiter(perMinute(cfg.UploadPerMinute), atLeastOne(cfg.UploadPerMinute)).Middleware(),
	}
}

func perMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(atLeastOne(n)))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
