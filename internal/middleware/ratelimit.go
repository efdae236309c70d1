package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit caps protected-route requests per user per window using a redis
// counter. A nil client disables limiting; redis outages fail open so
// scoring keeps working without the cache.
func RateLimit(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := fmt.Sprintf("quest:ratelimit:%s", userID)

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Rate limit check failed for %s: %v", userID, err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
				"code":  "RATE_LIMITED",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
