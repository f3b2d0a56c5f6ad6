package probe

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrSimulatedFailure 模拟探测的失败结果
var ErrSimulatedFailure = errors.New("probe: simulated failure")

// SimulatedConfig 模拟探测器配置
type SimulatedConfig struct {
	// SuccessRate 成功概率 [0,1]
	SuccessRate float64
	// MinLatency / MaxLatency 模拟耗时区间
	MinLatency time.Duration
	MaxLatency time.Duration
}

// Simulated 模拟探测器：随机睡眠后按概率返回成功。
// 随机源显式注入，测试可传入固定种子获得确定性结果。
type Simulated struct {
	cfg SimulatedConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated 创建模拟探测器
func NewSimulated(cfg SimulatedConfig, rng *rand.Rand) *Simulated {
	if cfg.SuccessRate <= 0 {
		cfg.SuccessRate = 0.8
	}
	if cfg.MinLatency <= 0 {
		cfg.MinLatency = 50 * time.Millisecond
	}
	if cfg.MaxLatency < cfg.MinLatency {
		cfg.MaxLatency = cfg.MinLatency
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulated{cfg: cfg, rng: rng}
}

// Probe 执行模拟探测
func (s *Simulated) Probe(ctx context.Context, node string) Result {
	s.mu.Lock()
	span := s.cfg.MaxLatency - s.cfg.MinLatency
	sleep := s.cfg.MinLatency
	if span > 0 {
		sleep += time.Duration(s.rng.Int63n(int64(span)))
	}
	pass := s.rng.Float64() < s.cfg.SuccessRate
	s.mu.Unlock()

	start := time.Now()
	select {
	case <-time.After(sleep):
	case <-ctx.Done():
		return Failed(node, time.Since(start), ctx.Err())
	}

	if !pass {
		return Failed(node, time.Since(start), ErrSimulatedFailure)
	}
	return OK(node, time.Since(start))
}
