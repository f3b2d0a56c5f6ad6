package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIClient E2E测试API客户端
type APIClient struct {
	config     *Config
	httpClient *http.Client
}

// NewAPIClient 创建API客户端
func NewAPIClient(cfg *Config) *APIClient {
	return &APIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// CheckResult 检查接口的响应（E2E视角只关心核心字段）
type CheckResult struct {
	StatusCode int
	Status     string `json:"status"`
	Error      string `json:"error"`
	Components []struct {
		Component string  `json:"component"`
		Status    string  `json:"status"`
		Duration  float64 `json:"duration"`
	} `json:"components"`
	DOT string `json:"dot"`
}

// CheckHealth 发起一次依赖图健康检查
func (c *APIClient) CheckHealth(ctx context.Context, nodes []string, edges [][2]string) (*CheckResult, error) {
	payload := map[string]any{"nodes": nodes, "edges": edges}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ServerURL+"/check_health", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	result := &CheckResult{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("parse response %q: %w", string(body), err)
	}
	return result, nil
}
