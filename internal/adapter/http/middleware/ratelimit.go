package middleware

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"locksmith_invoicing/internal/infrastructure/cache"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/pkg"
)

const limiterIdleTTL = 10 * time.Minute

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many attempts, try again later", http.StatusTooManyRequests)

// RateLimit allows perMinute requests per client IP with a burst of the same
// size. Idle clients are forgotten after ten minutes. perMinute <= 0 disables
// the limit.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiters := cache.NewTTLCache[string, *rate.Limiter]()
	every := rate.Every(time.Minute / time.Duration(perMinute))
	var calls atomic.Uint64

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := limiters.Update(ip, limiterIdleTTL, func(cur *rate.Limiter, found bool) (*rate.Limiter, bool) {
			if !found {
				cur = rate.NewLimiter(every, perMinute)
			}
			return cur, true
		})
		if calls.Add(1)%256 == 0 {
			limiters.Sweep()
		}

		if !limiter.Allow() {
			logger.FromContext(c.Request.Context()).Warn("rate limited", zap.String("client_ip", ip), zap.String("path", c.FullPath()))
			c.Header("Retry-After", "60")
			Abort(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}
