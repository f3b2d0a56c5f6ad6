// Package scheduler 并发探测调度：按并发上限对全部节点扇出探测并收集结果
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taoyao-code/graph-health/internal/probe"
)

// RunAll 并发探测全部节点，最多 maxConcurrency 个同时在飞。
// maxConcurrency <= 0 表示不限制（退化为每节点一个goroutine全量并发）。
//
// 各节点探测彼此独立，不按依赖边做门控；单个探测失败或panic
// 不会取消批次，调度器把故障转换为失败结果并继续收集。
// 结果切片与入参 nodes 同序，每个goroutine只写自己的槽位。
func RunAll(ctx context.Context, nodes []string, p probe.Prober, maxConcurrency int) []probe.Result {
	results := make([]probe.Result, len(nodes))
	if len(nodes) == 0 {
		return results
	}

	var sem chan struct{}
	if maxConcurrency > 0 {
		sem = make(chan struct{}, maxConcurrency)
	}

	var wg sync.WaitGroup
	for i, node := range nodes {
		wg.Add(1)
		go func(slot int, node string) {
			defer wg.Done()

			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					results[slot] = probe.Failed(node, 0, ctx.Err())
					return
				}
			}

			start := time.Now()
			defer func() {
				// Prober契约要求自行兜底panic；这里是调度器最后一道防线
				if rec := recover(); rec != nil {
					results[slot] = probe.Failed(node, time.Since(start), fmt.Errorf("prober panic: %v", rec))
				}
			}()
			results[slot] = p.Probe(ctx, node)
		}(i, node)
	}
	wg.Wait()
	return results
}
