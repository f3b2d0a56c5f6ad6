package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProber PostgreSQL连通性探测器：Ping + 简单查询
type PostgresProber struct {
	pool *pgxpool.Pool
}

// NewPostgresProber 创建PostgreSQL探测器
func NewPostgresProber(pool *pgxpool.Pool) *PostgresProber {
	return &PostgresProber{pool: pool}
}

// Probe 执行数据库探测
func (p *PostgresProber) Probe(ctx context.Context, node string) Result {
	start := time.Now()

	if err := p.pool.Ping(ctx); err != nil {
		return Failed(node, time.Since(start), fmt.Errorf("database ping failed: %w", err))
	}

	var one int
	if err := p.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return Failed(node, time.Since(start), fmt.Errorf("database query failed: %w", err))
	}
	return OK(node, time.Since(start))
}
