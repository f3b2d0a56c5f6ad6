// Package app 检查服务编排：建图→校验→规划→并发探测→聚合
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/taoyao-code/graph-health/internal/graph"
	"github.com/taoyao-code/graph-health/internal/metrics"
	"github.com/taoyao-code/graph-health/internal/probe"
	"github.com/taoyao-code/graph-health/internal/report"
	"github.com/taoyao-code/graph-health/internal/scheduler"
)

// ErrRequestTimeout 整个检查请求超时（校验通过后唯一的请求级失败）
var ErrRequestTimeout = errors.New("app: request timeout")

// CheckInput 一次检查请求的输入
type CheckInput struct {
	Nodes []string
	Edges [][2]string
}

// CheckOutput 检查结果：图、规划顺序与聚合报告
type CheckOutput struct {
	Graph  *graph.Graph
	Plan   []string
	Report *report.HealthReport
}

// CheckService 健康检查服务
type CheckService struct {
	prober         probe.Prober
	maxConcurrency int
	requestTimeout time.Duration
	logger         *zap.Logger
	metrics        *metrics.AppMetrics
}

// NewCheckService 创建检查服务。metrics 可为 nil（测试场景）。
func NewCheckService(p probe.Prober, maxConcurrency int, requestTimeout time.Duration, logger *zap.Logger, m *metrics.AppMetrics) *CheckService {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckService{
		prober:         p,
		maxConcurrency: maxConcurrency,
		requestTimeout: requestTimeout,
		logger:         logger,
		metrics:        m,
	}
}

// Check 执行一次完整检查。
// 校验错误（重复节点/未知端点/成环/空图）同步返回，不会启动任何探测；
// 单节点探测失败不是错误，以 degraded 报告返回。
func (s *CheckService) Check(ctx context.Context, in CheckInput) (*CheckOutput, error) {
	g, err := graph.Build(in.Nodes, in.Edges)
	if err != nil {
		return nil, err
	}
	if !g.IsAcyclic() {
		return nil, fmt.Errorf("%w: cycle detected", graph.ErrCyclicGraph)
	}
	plan, err := g.Plan()
	if err != nil {
		return nil, err
	}

	s.logger.Info("check planned",
		zap.Int("nodes", g.Len()),
		zap.Int("edges", len(g.Edges())),
		zap.Strings("order", plan),
	)
	if s.metrics != nil {
		s.metrics.GraphNodes.Set(float64(g.Len()))
		s.metrics.GraphEdges.Set(float64(len(g.Edges())))
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan []probe.Result, 1)
	go func() {
		done <- scheduler.RunAll(ctx, plan, s.prober, s.maxConcurrency)
	}()

	var results []probe.Result
	select {
	case results = <-done:
	case <-ctx.Done():
		return nil, ErrRequestTimeout
	}
	elapsed := time.Since(start)

	rep, err := report.Aggregate(results)
	if err != nil {
		return nil, err
	}
	rep.WithElapsed(elapsed)

	if s.metrics != nil {
		for _, r := range results {
			s.metrics.ProbesTotal.WithLabelValues(string(r.Status)).Inc()
			s.metrics.ProbeDuration.Observe(r.Duration.Seconds())
		}
		s.metrics.CheckDuration.Observe(elapsed.Seconds())
		if rep.Overall == report.OverallDegraded {
			s.metrics.DegradedChecks.Inc()
		}
	}
	s.logger.Info("check finished",
		zap.String("overall", string(rep.Overall)),
		zap.Duration("total", rep.TotalDuration),
		zap.Duration("elapsed", elapsed),
	)

	return &CheckOutput{Graph: g, Plan: plan, Report: rep}, nil
}
