package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit throttles a route per client IP using a fixed redis window.
// Fail-open: if redis is down the request goes through — the public booking
// form must not depend on the limiter being healthy.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:%s:%s", c.FullPath(), c.ClientIP())

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("rate limit redis error:", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "too_many_requests",
				"message":    "عدد كبير من الطلبات. يرجى المحاولة لاحقاً",
			})
			return
		}

		c.Next()
	}
}
