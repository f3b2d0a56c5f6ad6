package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taoyao-code/graph-health/internal/api"
	"github.com/taoyao-code/graph-health/internal/app"
	cfgpkg "github.com/taoyao-code/graph-health/internal/config"
	"github.com/taoyao-code/graph-health/internal/httpserver"
	"github.com/taoyao-code/graph-health/internal/logging"
	"github.com/taoyao-code/graph-health/internal/metrics"
	"github.com/taoyao-code/graph-health/internal/probe"
)

func main() {
	// 1) 加载配置
	cfg, err := cfgpkg.Load("")
	if err != nil {
		panic(err)
	}

	// 2) 初始化日志
	logger, err := logging.InitLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	log := zap.L()

	// 3) 指标注册与处理器
	reg := metrics.NewRegistry()
	appMetrics := metrics.NewAppMetrics(reg)
	var metricsHandler = metrics.Handler(reg)
	if !cfg.Metrics.Enable {
		metricsHandler = nil
	}

	// 4) 探测器装配（模拟/HTTP/TCP/Redis/PostgreSQL）
	registry, cleanup, err := app.BuildRegistry(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("build probers", zap.Error(err))
	}
	defer cleanup()

	// 统一套上单次探测超时与panic兜底
	runner := probe.NewRunner(registry, cfg.Check.ProbeTimeout)

	// 5) 检查服务与HTTP接口
	svc := app.NewCheckService(runner, cfg.Check.MaxConcurrency, cfg.Check.RequestTimeout, log, appMetrics)
	handler := api.NewHandler(svc, registry, log, appMetrics)

	httpSrv := httpserver.New(cfg.HTTP, cfg.Metrics.Path, metricsHandler)
	api.RegisterRoutes(httpSrv.Engine(), handler, cfg.HTTP, log)

	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTP.Addr))
		if err := httpSrv.Start(); err != nil {
			log.Error("http server error", zap.Error(err))
		}
	}()

	// 信号处理，优雅关闭
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
}
