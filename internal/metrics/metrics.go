// 包 metrics：目录服务的 Prometheus 指标与 /metrics 暴露
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parksapi_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parksapi_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 20, 50, 100, 200, 500},
	}, []string{"route"})
	SearchResults = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parksapi_search_results",
		Help:    "Number of records returned by a search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	}, []string{"catalog"})
	EmptySearchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parksapi_empty_search_total",
		Help: "Total searches that matched no record",
	}, []string{"catalog"})
	NotFoundTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parksapi_not_found_total",
		Help: "Total by-id lookups for an unknown id",
	}, []string{"catalog"})
	CatalogRecords = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "parksapi_catalog_records",
		Help: "Records loaded per catalog at startup",
	}, []string{"catalog"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(EmptySearchTotal)
	prometheus.MustRegister(NotFoundTotal)
	prometheus.MustRegister(CatalogRecords)
}

// ObserveSearch：记录一次搜索的结果数
func ObserveSearch(catalog string, n int) {
	SearchResults.WithLabelValues(catalog).Observe(float64(n))
	if n == 0 {
		EmptySearchTotal.WithLabelValues(catalog).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument：按固定路由名统计请求数与耗时
// 约束：route 使用注册时的模式串而不是实际路径，避免 id/query 造成标签基数膨胀。
func Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		RequestsTotal.WithLabelValues(route, strconv.Itoa(sw.status)).Inc()
		RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Microseconds()) / 1000)
	})
}

// Handler：返回 Prometheus 指标处理器，在主入口挂载到 /metrics
func Handler() http.Handler { return promhttp.Handler() }
