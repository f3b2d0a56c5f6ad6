// Package api 对外HTTP接口：检查请求的解析、执行与响应序列化
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/graph-health/internal/app"
	"github.com/taoyao-code/graph-health/internal/graph"
	"github.com/taoyao-code/graph-health/internal/metrics"
	"github.com/taoyao-code/graph-health/internal/probe"
	"github.com/taoyao-code/graph-health/internal/report"
)

// CheckRequest POST /check_health 请求体
type CheckRequest struct {
	Nodes []string    `json:"nodes"`
	Edges [][2]string `json:"edges"`
}

// ComponentEntry 报告中单个组件条目
type ComponentEntry struct {
	Component string  `json:"component"`
	Status    string  `json:"status"`
	Duration  float64 `json:"duration"`
	Error     string  `json:"error,omitempty"`
}

// GraphNode 带着色类别的图节点
type GraphNode struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GraphView 响应中的图结构
type GraphView struct {
	Nodes []GraphNode  `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// CheckResponse POST /check_health 响应体
type CheckResponse struct {
	Status        string           `json:"status"`
	TotalDuration float64          `json:"total_duration"`
	Elapsed       float64          `json:"elapsed"`
	Components    []ComponentEntry `json:"components"`
	Graph         GraphView        `json:"graph"`
	DOT           string           `json:"dot"`
}

// Handler 检查接口处理器
type Handler struct {
	svc      *app.CheckService
	registry *probe.Registry
	logger   *zap.Logger
	metrics  *metrics.AppMetrics
}

// NewHandler 创建处理器。registry / metrics 可为 nil。
func NewHandler(svc *app.CheckService, registry *probe.Registry, logger *zap.Logger, m *metrics.AppMetrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, registry: registry, logger: logger, metrics: m}
}

// CheckHealth 执行一次依赖图健康检查
// POST /check_health
func (h *Handler) CheckHealth(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countOutcome("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Nodes == nil || req.Edges == nil {
		h.countOutcome("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "nodes and edges are required"})
		return
	}

	out, err := h.svc.Check(c.Request.Context(), app.CheckInput{Nodes: req.Nodes, Edges: req.Edges})
	if err != nil {
		h.writeCheckError(c, err)
		return
	}

	h.countOutcome("ok")
	c.JSON(http.StatusOK, buildResponse(out))
}

// writeCheckError 按错误分类映射HTTP状态码
func (h *Handler) writeCheckError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, graph.ErrDuplicateNode),
		errors.Is(err, graph.ErrUnknownEndpoint),
		errors.Is(err, graph.ErrCyclicGraph),
		errors.Is(err, graph.ErrNoRoots):
		h.countOutcome("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrRequestTimeout):
		h.countOutcome("timeout")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request timeout"})
	default:
		h.logger.Error("check failed", zap.Error(err))
		h.countOutcome("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListProbers 列出组件与探测器的绑定
// GET /probers
func (h *Handler) ListProbers(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusOK, gin.H{"bindings": []probe.Binding{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bindings": h.registry.Bindings()})
}

func (h *Handler) countOutcome(outcome string) {
	if h.metrics != nil {
		h.metrics.CheckRequests.WithLabelValues(outcome).Inc()
	}
}

func buildResponse(out *app.CheckOutput) CheckResponse {
	rep := out.Report
	statuses := rep.NodeStatuses()

	components := make([]ComponentEntry, 0, len(rep.Order))
	for _, node := range rep.Order {
		r := rep.Results[node]
		components = append(components, ComponentEntry{
			Component: node,
			Status:    string(r.Status),
			Duration:  r.Duration.Seconds(),
			Error:     r.Err,
		})
	}

	nodes := make([]GraphNode, 0, out.Graph.Len())
	for _, n := range out.Graph.Nodes() {
		nodes = append(nodes, GraphNode{ID: n, Status: statuses[n]})
	}

	return CheckResponse{
		Status:        string(rep.Overall),
		TotalDuration: rep.TotalDuration.Seconds(),
		Elapsed:       rep.Elapsed.Seconds(),
		Components:    components,
		Graph:         GraphView{Nodes: nodes, Edges: out.Graph.Edges()},
		DOT:           report.DOT(out.Graph, statuses),
	}
}
