package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"vigia/internal/infrastructure/ratelimit"
	"vigia/internal/shared/utils"
)

// RateLimiter enforces per-IP limits on the webhook endpoint using the
// Redis sliding-window limiter. All instances share the same counters.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
}

// NewRateLimiter creates a Redis-backed rate limiter middleware.
func NewRateLimiter(redisClient *redis.Client, config ratelimit.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: ratelimit.NewRedisRateLimiter(redisClient),
		config:  config,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow("ip:"+c.ClientIP(), rl.config)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
