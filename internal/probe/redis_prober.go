package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisProber Redis连通性探测器：PING + 连接池利用率检查
type RedisProber struct {
	client *redis.Client
}

// NewRedisProber 创建Redis探测器
func NewRedisProber(client *redis.Client) *RedisProber {
	return &RedisProber{client: client}
}

// Probe 执行Redis探测
func (p *RedisProber) Probe(ctx context.Context, node string) Result {
	start := time.Now()

	if err := p.client.Ping(ctx).Err(); err != nil {
		return Failed(node, time.Since(start), fmt.Errorf("redis ping failed: %w", err))
	}

	// PING通过但连接池已耗尽且出现过获取超时，视为失败
	stats := p.client.PoolStats()
	if stats.TotalConns > 0 && stats.IdleConns == 0 && stats.Timeouts > 0 {
		return Failed(node, time.Since(start), fmt.Errorf("redis pool exhausted: timeouts=%d", stats.Timeouts))
	}
	return OK(node, time.Since(start))
}
