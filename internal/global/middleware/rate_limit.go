package middleware

import (
	"log/slog"
	"time"

	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// idleLimiterTTL 客户端闲置超过该时长后丢弃其令牌桶
const idleLimiterTTL = 10 * time.Minute

// RateLimiter 按客户端 IP 限流，每个 IP 一个令牌桶
type RateLimiter struct {
	limiters *ttlcache.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	log      *slog.Logger
}

func NewRateLimiter(log *slog.Logger, perSecond float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = int(perSecond) + 1
	}
	return &RateLimiter{
		limiters: ttlcache.New[string, *rate.Limiter](
			ttlcache.WithTTL[string, *rate.Limiter](idleLimiterTTL),
		),
		limit: rate.Limit(perSecond),
		burst: burst,
		log:   log,
	}
}

// Start 定期清理闲置的令牌桶，阻塞直到 Stop
func (rl *RateLimiter) Start() {
	rl.limiters.Start()
}

func (rl *RateLimiter) Stop() {
	rl.limiters.Stop()
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	item, _ := rl.limiters.GetOrSet(key, rate.NewLimiter(rl.limit, rl.burst))
	return item.Value()
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			rl.log.Warn("rate limit exceeded",
				"client_ip", c.ClientIP(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			response.Fail(c, response.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
