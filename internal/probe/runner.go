package probe

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrProbeTimeout 探测超时
var ErrProbeTimeout = errors.New("probe: timeout")

// Runner 为任意 Prober 套上单次探测超时与panic兜底。
// 超时结果记为失败且 Duration 固定为超时值；panic被恢复为失败结果。
type Runner struct {
	inner   Prober
	timeout time.Duration
}

// NewRunner 创建带超时保护的探测执行器
func NewRunner(inner Prober, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Runner{inner: inner, timeout: timeout}
}

// Timeout 返回单次探测超时
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Probe 执行探测，保证在 timeout 内返回
func (r *Runner) Probe(ctx context.Context, node string) Result {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	resultCh := make(chan Result, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				resultCh <- Failed(node, time.Since(start), fmt.Errorf("probe panic: %v", rec))
			}
		}()
		resultCh <- r.inner.Probe(ctx, node)
	}()

	select {
	case res := <-resultCh:
		if res.Node == "" {
			res.Node = node
		}
		return res
	case <-ctx.Done():
		return Failed(node, r.timeout, ErrProbeTimeout)
	}
}
