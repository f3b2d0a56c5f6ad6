package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckScenarios 对运行中的服务回放场景文件。
// 未设置 E2E_SERVER_URL 时跳过。
func TestCheckScenarios(t *testing.T) {
	cfg := GetConfig()
	if cfg.ServerURL == "" {
		t.Skip("E2E_SERVER_URL 未设置，跳过E2E测试")
	}

	scenarios, err := LoadScenarios(cfg.ScenarioFile)
	require.NoError(t, err)

	client := NewAPIClient(cfg)
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			res, err := client.CheckHealth(context.Background(), sc.Nodes, sc.Edges)
			require.NoError(t, err)

			assert.Equal(t, sc.ExpectStatus, res.StatusCode)
			if sc.ExpectError != "" {
				assert.Contains(t, res.Error, sc.ExpectError)
				return
			}

			// 成功场景：每个节点恰好一个条目
			assert.Len(t, res.Components, len(sc.Nodes))
			assert.Contains(t, []string{"healthy", "degraded"}, res.Status)
			assert.Contains(t, res.DOT, "digraph")
		})
	}
}
