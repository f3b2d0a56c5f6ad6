package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/graph-health/internal/api/middleware"
	"github.com/taoyao-code/graph-health/internal/config"
)

// RegisterRoutes 注册检查接口路由与中间件
func RegisterRoutes(r *gin.Engine, h *Handler, httpCfg config.HTTPConfig, logger *zap.Logger) {
	if r == nil || h == nil {
		return
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))

	checked := r.Group("/")
	checked.Use(middleware.RateLimit(httpCfg.RatePerSec, httpCfg.Burst))

	checked.POST("/check_health", h.CheckHealth)
	checked.GET("/probers", h.ListProbers)
}
