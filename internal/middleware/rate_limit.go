// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/hazaldoster/beautybot/internal/i18n"
	"github.com/hazaldoster/beautybot/internal/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	// Clean up old visitors every minute
	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getVisitor(ip)

		if !limiter.Allow() {
			lang := utils.GetLangFromContext(c)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED",
				i18n.T(lang, i18n.KeyErrRateLimited), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// passThrough is the middleware for a disabled limit.
func passThrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// GeneralRateLimit allows perSecond requests each second per client IP.
// A non-positive limit disables throttling.
func GeneralRateLimit(perSecond int) gin.HandlerFunc {
	if perSecond <= 0 {
		return passThrough()
	}
	return NewRateLimiter(rate.Limit(perSecond), perSecond).Middleware()
}

// ChatRateLimit keeps LLM traffic down to perMinute requests per client IP.
// A non-positive limit disables throttling.
func ChatRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return passThrough()
	}
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute).Middleware()
}
