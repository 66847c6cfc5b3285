package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/pkg/limiter"
	"github.com/marketboost/core/internal/pkg/response"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitMessage = "Too many requests, please try again later."

// RateLimit enforces a fixed-window request limit per client IP. With a
// Redis client the window lives in Redis (INCR on a per-window key) and is
// shared across instances; otherwise the process-local window is used.
// Redis errors fail open rather than blocking traffic.
func RateLimit(rdb *redis.Client, win *limiter.Window, max int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		if rdb == nil {
			if !win.Allow(ip) {
				reject(c, log, ip, retryAfter)
				return
			}
			c.Next()
			return
		}

		ctx := c.Request.Context()
		windowKey := time.Now().UnixMilli() / window.Milliseconds()
		key := fmt.Sprintf("mb:rate_limit:%s:%d", ip, windowKey)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, window+time.Second)
		}
		if count > int64(max) {
			reject(c, log, ip, retryAfter)
			return
		}

		c.Next()
	}
}

func reject(c *gin.Context, log *zap.Logger, ip, retryAfter string) {
	log.Warn("rate limit exceeded",
		zap.String("ip", ip),
		zap.String("path", c.Request.URL.Path),
	)
	c.Header("Retry-After", retryAfter)
	response.TooManyRequests(c, rateLimitMessage)
}
