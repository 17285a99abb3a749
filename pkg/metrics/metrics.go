// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速览：
//   - Counter（计数器）：只增不减，如HTTP请求总数、借阅总数
//   - Gauge（仪表盘）：可增可减的瞬时值，如正在处理的请求数
//   - Histogram（直方图）：观测值分布，如请求耗时的P50/P90/P99
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds），
// 标签只用有限取值的维度（method/path/status），避免高基数标签。
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BooksBorrowedTotal 图书借出总数（Counter）
	BooksBorrowedTotal prometheus.Counter

	// BooksReturnedTotal 图书归还总数（Counter）
	BooksReturnedTotal prometheus.Counter

	// BorrowConflictsTotal 借阅状态冲突总数（Counter）
	// 并发借阅同一本书时，失败方会计入此指标
	BorrowConflictsTotal prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，使用promauto自动注册到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP请求耗时(秒)",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
	}, []string{"method", "path"})

	HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_progress",
		Help: "正在处理的HTTP请求数",
	})

	BooksBorrowedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "books_borrowed_total",
		Help: "图书借出总数",
	})

	BooksReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "books_returned_total",
		Help: "图书归还总数",
	})

	BorrowConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "borrow_conflicts_total",
		Help: "借阅状态冲突总数",
	})
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware 请求指标中间件
// 记录每个请求的计数与耗时
// 注意：path使用gin的路由模板（/api/v1/books/:id），避免id导致高基数
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInProgress.Inc()

		c.Next()

		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404等未匹配路由统一归类
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
