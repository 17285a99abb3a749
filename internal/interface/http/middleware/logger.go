package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求ID响应头
const RequestIDHeader = "X-Request-ID"

// RequestID 请求ID中间件
// 客户端没带X-Request-ID时生成一个UUID,注入Context并回写响应头,
// 便于跨服务日志串联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// slowRequestThreshold 超过此耗时的请求额外记一条慢请求日志
const slowRequestThreshold = time.Second

// Logger 访问日志中间件
// 记录方法、路径、状态码、耗时、客户端IP和请求ID
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] %s %s %d %v %s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
		)

		if latency > slowRequestThreshold {
			log.Printf("[%v] 慢请求: %s %s 耗时%v", requestID, c.Request.Method, path, latency)
		}
	}
}
