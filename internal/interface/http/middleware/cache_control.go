package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIVersion 当前API版本号,通过响应头暴露给客户端
const APIVersion = "1.0"

// CacheControl 缓存控制中间件
// 设计说明：
// 1. GET请求的响应允许中间层缓存(maxAge秒)
// 2. 写请求(POST/PUT/PATCH/DELETE)的响应禁止缓存,
//    避免客户端或代理缓存到过期的资源状态
// 3. 所有响应都带上X-API-Version头
//
// 响应头必须在业务Handler写出响应体之前设置,所以在c.Next()之前处理
func CacheControl(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", APIVersion)

		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
		} else {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		}

		c.Next()
	}
}
