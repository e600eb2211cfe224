package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var redisFixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisRateLimiter is a fixed-window limiter shared across instances. It
// fails open: when redis is unreachable, requests pass through with a log.
type RedisRateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisRateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisRateLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (rl *RedisRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + rl.clientKey(c)
		count, err := rl.incr(c, key)
		if err != nil {
			slog.Warn("redis rate limiter error", "error", err)
			c.Next()
			return
		}
		if count > int64(rl.limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authenticated callers are limited per user, anonymous ones per client IP.
func (rl *RedisRateLimiter) clientKey(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return userID.String()
	}
	return c.ClientIP()
}

func (rl *RedisRateLimiter) incr(c *gin.Context, key string) (int64, error) {
	ms := rl.window.Milliseconds()
	res, err := redisFixedWindowScript.Run(c.Request.Context(), rl.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, nil
	}
}
