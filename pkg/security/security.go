package security

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"mbo_backend/internal/config"
	"mbo_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// corsAllowedHeaders 只放行本服务API实际会收到的请求头
const corsAllowedHeaders = "Content-Type, Authorization, Accept"

// corsAllowedMethods 没有提供PATCH接口，不在列表里
const corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"

// CORS 只放行白名单中的Origin。CORS头只在Origin命中时返回，
// 未命中的跨域请求拿不到任何放行头
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	originSet := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		originSet[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && originSet[strings.TrimRight(origin, "/")] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)
			c.Header("Access-Control-Allow-Methods", corsAllowedMethods)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 纯JSON后端的响应头加固
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止MIME嗅探（CSV/JSON下载）
		c.Header("X-Content-Type-Options", "nosniff")
		// 防止嵌入页面
		c.Header("X-Frame-Options", "DENY")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// client 限流器和最后活跃时间，清理协程用
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按IP限流。配置缺省时退回每分钟300次。
// 清理周期跟着窗口走，静默超过三个窗口的IP被丢弃
func RateLimiter(cfg config.RateLimitConfig) gin.HandlerFunc {
	maxRequests := cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}

	clients := make(map[string]*client)
	var mu sync.Mutex

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*window {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	limit := rate.Every(window / time.Duration(maxRequests))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, maxRequests)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		mu.Unlock()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, util.Response{
				Code:    http.StatusTooManyRequests,
				Message: "リクエストが多すぎます。しばらく待ってから再試行してください",
			})
			return
		}

		c.Next()
	}
}
