package response

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
// 设计说明：
// 1. Count是匹配的总记录数（不是当前页的条数）
// 2. Next/Previous是上下页的完整URL，没有时为null
// 3. Results是当前页的数据列表
type PageData struct {
	Count    int64       `json:"count"`    // 总记录数
	Next     *string     `json:"next"`     // 下一页URL(没有则为null)
	Previous *string     `json:"previous"` // 上一页URL(没有则为null)
	Results  interface{} `json:"results"`  // 数据列表
}

// NewPageData 创建分页数据
// 根据总数和当前页计算是否存在上/下一页，并基于当前请求URL生成翻页链接
func NewPageData(c *gin.Context, results interface{}, count int64, page, pageSize int) *PageData {
	totalPages := TotalPages(count, pageSize)

	var next, previous *string
	if page < totalPages {
		u := pageURL(c, page+1)
		next = &u
	}
	if page > 1 {
		u := pageURL(c, page-1)
		previous = &u
	}

	return &PageData{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, results interface{}, count int64, page, pageSize int) {
	Success(c, NewPageData(c, results, count, page, pageSize))
}

// TotalPages 计算总页数（向上取整）
func TotalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	totalPages := int(count) / pageSize
	if int(count)%pageSize != 0 {
		totalPages++
	}
	return totalPages
}

// pageURL 基于当前请求生成指定页码的完整URL
// 保留原有查询参数（search、ordering、page_size等），只替换page
func pageURL(c *gin.Context, page int) string {
	u := url.URL{
		Scheme: "http",
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}

	query := c.Request.URL.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()

	return u.String()
}
