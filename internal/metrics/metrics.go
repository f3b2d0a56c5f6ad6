package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry 创建自定义 Prometheus Registry，并注册常用采集器
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler 返回 Prometheus 指标 HTTP 处理器
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// AppMetrics 健康检查业务指标
type AppMetrics struct {
	CheckRequests  *prometheus.CounterVec // labels: outcome=ok|invalid|timeout
	ProbesTotal    *prometheus.CounterVec // labels: status=ok|failed
	ProbeDuration  prometheus.Histogram   // 单次探测耗时分布
	CheckDuration  prometheus.Histogram   // 单次检查请求墙钟耗时
	GraphNodes     prometheus.Gauge       // 最近一次检查的节点数
	GraphEdges     prometheus.Gauge       // 最近一次检查的边数
	DegradedChecks prometheus.Counter     // 结果为degraded的检查数
}

// NewAppMetrics 注册并返回业务指标
func NewAppMetrics(reg *prometheus.Registry) *AppMetrics {
	m := &AppMetrics{
		CheckRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "check_requests_total",
			Help: "Health check requests by outcome.",
		}, []string{"outcome"}),
		ProbesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "probes_total",
			Help: "Component probes by status.",
		}, []string{"status"}),
		ProbeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "probe_duration_seconds",
			Help:    "Duration of individual component probes.",
			Buckets: prometheus.DefBuckets,
		}),
		CheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "check_duration_seconds",
			Help:    "Wall-clock duration of whole check requests.",
			Buckets: prometheus.DefBuckets,
		}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graph_nodes",
			Help: "Node count of the most recent checked graph.",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graph_edges",
			Help: "Edge count of the most recent checked graph.",
		}),
		DegradedChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "degraded_checks_total",
			Help: "Checks whose overall status was degraded.",
		}),
	}
	reg.MustRegister(m.CheckRequests, m.ProbesTotal, m.ProbeDuration, m.CheckDuration, m.GraphNodes, m.GraphEdges, m.DegradedChecks)
	return m
}
