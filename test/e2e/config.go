package e2e

import (
	"os"
	"time"
)

// Config E2E测试配置
type Config struct {
	// ServerURL 被测服务地址；为空时跳过E2E测试
	ServerURL string
	// RequestTimeout 单个请求超时
	RequestTimeout time.Duration
	// ScenarioFile 场景定义文件
	ScenarioFile string
}

// GetConfig 获取测试配置（环境变量覆盖）
func GetConfig() *Config {
	return &Config{
		ServerURL:      getEnv("E2E_SERVER_URL", ""),
		RequestTimeout: getDurationEnv("E2E_REQUEST_TIMEOUT", 30*time.Second),
		ScenarioFile:   getEnv("E2E_SCENARIO_FILE", "testdata/scenarios.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
