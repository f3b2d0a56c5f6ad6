// Package probe 组件探测执行器：抽象单个组件的健康探测能力
package probe

import (
	"context"
	"time"
)

// Status 探测结果状态
type Status string

const (
	StatusOK     Status = "ok"     // 探测通过
	StatusFailed Status = "failed" // 探测失败（含超时）
)

// Result 单个组件的探测结果
type Result struct {
	Node     string        `json:"component"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}

// OK 构造通过结果
func OK(node string, d time.Duration) Result {
	return Result{Node: node, Status: StatusOK, Duration: d}
}

// Failed 构造失败结果
func Failed(node string, d time.Duration, err error) Result {
	r := Result{Node: node, Status: StatusFailed, Duration: d}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

// Prober 探测器接口。实现必须在有限时间内返回，
// 内部故障一律转换为 StatusFailed，不向外抛出。
type Prober interface {
	Probe(ctx context.Context, node string) Result
}

// ProberFunc 函数适配器
type ProberFunc func(ctx context.Context, node string) Result

// Probe 执行探测
func (f ProberFunc) Probe(ctx context.Context, node string) Result {
	return f(ctx, node)
}
