package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taoyao-code/graph-health/internal/config"
	"github.com/taoyao-code/graph-health/internal/probe"
)

// BuildRegistry 根据配置装配探测器分发器：
// 默认探测器按 probe.kind 选择，HTTP/TCP目标逐组件绑定，
// Redis/PostgreSQL启用时为对应组件绑定真实连通性探测。
// 返回的 cleanup 负责关闭外部连接。
func BuildRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*probe.Registry, func(), error) {
	fallback, err := buildFallback(cfg.Probe)
	if err != nil {
		return nil, nil, err
	}
	registry := probe.NewRegistry(fallback)

	for node, url := range cfg.Probe.HTTPTargets {
		registry.Register(node, "http", probe.NewHTTPProber(map[string]string{node: url}, cfg.Check.ProbeTimeout))
	}
	for node, addr := range cfg.Probe.TCPTargets {
		registry.Register(node, "tcp", probe.NewTCPProber(map[string]string{node: addr}, cfg.Check.ProbeTimeout))
	}

	closers := make([]func(), 0, 2)
	cleanup := func() {
		for _, fn := range closers {
			fn()
		}
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		closers = append(closers, func() { _ = client.Close() })
		registry.Register(cfg.Redis.Component, "redis", probe.NewRedisProber(client))
		logger.Info("redis prober registered", zap.String("component", cfg.Redis.Component), zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.Database.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("parse database dsn: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		closers = append(closers, pool.Close)
		registry.Register(cfg.Database.Component, "postgres", probe.NewPostgresProber(pool))
		logger.Info("postgres prober registered", zap.String("component", cfg.Database.Component))
	}

	return registry, cleanup, nil
}

func buildFallback(cfg config.ProbeConfig) (probe.Prober, error) {
	switch cfg.Kind {
	case "", "simulated":
		return probe.NewSimulated(probe.SimulatedConfig{
			SuccessRate: cfg.SuccessRate,
			MinLatency:  cfg.MinLatency,
			MaxLatency:  cfg.MaxLatency,
		}, rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	case "http":
		return probe.NewHTTPProber(cfg.HTTPTargets, 0), nil
	case "tcp":
		return probe.NewTCPProber(cfg.TCPTargets, 0), nil
	default:
		return nil, fmt.Errorf("unknown probe kind %q", cfg.Kind)
	}
}
