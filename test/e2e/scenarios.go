package e2e

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario 一个检查场景：输入图与期望结果
type Scenario struct {
	Name  string      `yaml:"name"`
	Nodes []string    `yaml:"nodes"`
	Edges [][2]string `yaml:"edges"`
	// ExpectStatus 期望HTTP状态码
	ExpectStatus int `yaml:"expectStatus"`
	// ExpectError 期望错误信息包含的子串（仅错误场景）
	ExpectError string `yaml:"expectError,omitempty"`
}

// ScenarioFile 场景文件结构
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios 从YAML文件加载检查场景
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return file.Scenarios, nil
}
