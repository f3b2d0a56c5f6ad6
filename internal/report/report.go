// Package report 健康报告聚合：把单节点探测结果归并为整体报告
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/taoyao-code/graph-health/internal/probe"
)

// ErrDuplicateComponent 结果集中出现重复组件（图模型已保证唯一，防御性检查）
var ErrDuplicateComponent = errors.New("report: duplicate component")

// OverallStatus 系统整体状态
type OverallStatus string

const (
	OverallHealthy  OverallStatus = "healthy"  // 全部组件探测通过
	OverallDegraded OverallStatus = "degraded" // 至少一个组件失败
)

// 节点着色类别，供外部渲染使用
const (
	ColorHealthy = "healthy"
	ColorFailed  = "failed"
)

// HealthReport 整体健康报告
type HealthReport struct {
	// Overall 整体状态：任一失败即 degraded
	Overall OverallStatus
	// Results 按组件标识索引的探测结果
	Results map[string]probe.Result
	// Order 结果的展示顺序（来自遍历规划）
	Order []string
	// TotalDuration 全部探测耗时之和（探测秒数负载指标，非墙钟）
	TotalDuration time.Duration
	// Elapsed 批次墙钟耗时，全并发下约等于最慢探测
	Elapsed time.Duration
}

// Aggregate 归并探测结果。结果顺序无关，给定相同输入输出确定。
func Aggregate(results []probe.Result) (*HealthReport, error) {
	rep := &HealthReport{
		Overall: OverallHealthy,
		Results: make(map[string]probe.Result, len(results)),
		Order:   make([]string, 0, len(results)),
	}

	for _, r := range results {
		if _, ok := rep.Results[r.Node]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, r.Node)
		}
		rep.Results[r.Node] = r
		rep.Order = append(rep.Order, r.Node)
		rep.TotalDuration += r.Duration
		if r.Status == probe.StatusFailed {
			rep.Overall = OverallDegraded
		}
	}
	return rep, nil
}

// WithElapsed 记录批次墙钟耗时
func (r *HealthReport) WithElapsed(d time.Duration) *HealthReport {
	r.Elapsed = d
	return r
}

// NodeStatuses 生成节点到着色类别的映射，与具体渲染技术无关
func (r *HealthReport) NodeStatuses() map[string]string {
	statuses := make(map[string]string, len(r.Results))
	for node, res := range r.Results {
		if res.Status == probe.StatusOK {
			statuses[node] = ColorHealthy
		} else {
			statuses[node] = ColorFailed
		}
	}
	return statuses
}
