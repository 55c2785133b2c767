package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
)

// RateLimiter limita tentativas por IP usando contagem por janela no
// redis. Usado no login para frear brute force de credenciais. Se o
// redis estiver indisponível a requisição passa; o limiter nunca
// derruba a API.
func RateLimiter(rdb *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate-limit:" + c.ClientIP()
		ctx := c.Request.Context()

		pipe := rdb.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		count := incr.Val()
		if count > limit {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Muitas tentativas, aguarde.")
			c.Abort()
			return
		}

		remaining := limit - count
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Next()
	}
}
