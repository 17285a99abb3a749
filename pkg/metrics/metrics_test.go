package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BooksBorrowedTotal == nil {
		t.Error("BooksBorrowedTotal未初始化")
	}
	if BorrowConflictsTotal == nil {
		t.Error("BorrowConflictsTotal未初始化")
	}

	// 重复调用不应panic(promauto重复注册会panic,靠initialized标记拦截)
	InitMetrics()
}

// TestBusinessCounters 测试业务计数器递增
func TestBusinessCounters(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksBorrowedTotal)
	BooksBorrowedTotal.Inc()
	BooksBorrowedTotal.Inc()

	value := getCounterValue(t, BooksBorrowedTotal)
	if value != before+2 {
		t.Errorf("Counter值错误: expected=%f, got=%f", before+2, value)
	}

	before = getCounterValue(t, BorrowConflictsTotal)
	BorrowConflictsTotal.Inc()
	if got := getCounterValue(t, BorrowConflictsTotal); got != before+1 {
		t.Errorf("Counter值错误: expected=%f, got=%f", before+1, got)
	}
}

// TestMiddleware 测试请求指标中间件
// 验证:path标签使用路由模板而非实际URL(避免高基数)
func TestMiddleware(t *testing.T) {
	InitMetrics()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/v1/books/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	labels := map[string]string{
		"method": "GET",
		"path":   "/api/v1/books/:id",
		"status": "200",
	}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/42", nil)
	r.ServeHTTP(w, req)

	value := getCounterVecValue(t, HTTPRequestsTotal, labels)
	if value != before+1 {
		t.Errorf("请求计数错误: expected=%f, got=%f", before+1, value)
	}

	// 处理完成后并发Gauge应归零
	if got := getGaugeValue(t, HTTPRequestsInProgress); got != 0 {
		t.Errorf("正在处理的请求数错误: expected=0, got=%f", got)
	}
}

// TestMiddlewareUnmatchedRoute 未匹配路由统一归类为unmatched
func TestMiddlewareUnmatchedRoute(t *testing.T) {
	InitMetrics()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())

	labels := map[string]string{
		"method": "GET",
		"path":   "unmatched",
		"status": "404",
	}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	r.ServeHTTP(w, req)

	if got := getCounterVecValue(t, HTTPRequestsTotal, labels); got != before+1 {
		t.Errorf("未匹配路由计数错误: expected=%f, got=%f", before+1, got)
	}
}

// 辅助函数：获取Counter值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	if err := counter.(prometheus.Counter).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}
