package report

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/taoyao-code/graph-health/internal/probe"
)

func TestAggregate(t *testing.T) {
	t.Run("全部通过为healthy且耗时求和", func(t *testing.T) {
		rep, err := Aggregate([]probe.Result{
			probe.OK("Database", 100*time.Millisecond),
			probe.OK("API", 200*time.Millisecond),
			probe.OK("Cache", 300*time.Millisecond),
		})
		if err != nil {
			t.Fatalf("聚合失败: %v", err)
		}
		if rep.Overall != OverallHealthy {
			t.Errorf("期望healthy，实际: %v", rep.Overall)
		}
		if rep.TotalDuration != 600*time.Millisecond {
			t.Errorf("期望总耗时600ms，实际: %v", rep.TotalDuration)
		}
		if len(rep.Results) != 3 {
			t.Errorf("期望3个条目，实际: %d", len(rep.Results))
		}
	})

	t.Run("degraded当且仅当存在失败", func(t *testing.T) {
		cases := []struct {
			name     string
			statuses []probe.Status
			want     OverallStatus
		}{
			{"全部通过", []probe.Status{probe.StatusOK, probe.StatusOK}, OverallHealthy},
			{"单个失败", []probe.Status{probe.StatusOK, probe.StatusFailed}, OverallDegraded},
			{"全部失败", []probe.Status{probe.StatusFailed, probe.StatusFailed}, OverallDegraded},
			{"仅一个通过", []probe.Status{probe.StatusOK}, OverallHealthy},
			{"仅一个失败", []probe.Status{probe.StatusFailed}, OverallDegraded},
			{"空结果", nil, OverallHealthy},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				results := make([]probe.Result, 0, len(tc.statuses))
				for i, s := range tc.statuses {
					results = append(results, probe.Result{Node: string(rune('a' + i)), Status: s})
				}
				rep, err := Aggregate(results)
				if err != nil {
					t.Fatalf("聚合失败: %v", err)
				}
				if rep.Overall != tc.want {
					t.Errorf("期望%v，实际: %v", tc.want, rep.Overall)
				}
			})
		}
	})

	t.Run("重复组件返回ErrDuplicateComponent", func(t *testing.T) {
		_, err := Aggregate([]probe.Result{
			probe.OK("a", time.Millisecond),
			probe.OK("a", time.Millisecond),
		})
		if !errors.Is(err, ErrDuplicateComponent) {
			t.Errorf("期望ErrDuplicateComponent，实际: %v", err)
		}
	})

	t.Run("聚合幂等", func(t *testing.T) {
		input := []probe.Result{
			probe.OK("x", 10*time.Millisecond),
			probe.Failed("y", 20*time.Millisecond, probe.ErrProbeTimeout),
		}
		first, err := Aggregate(input)
		if err != nil {
			t.Fatalf("聚合失败: %v", err)
		}
		second, err := Aggregate(input)
		if err != nil {
			t.Fatalf("聚合失败: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("两次聚合结果不一致: %+v vs %+v", first, second)
		}
	})
}

func TestNodeStatuses(t *testing.T) {
	rep, err := Aggregate([]probe.Result{
		probe.OK("good", time.Millisecond),
		probe.Failed("bad", time.Millisecond, probe.ErrSimulatedFailure),
	})
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}

	statuses := rep.NodeStatuses()
	if statuses["good"] != ColorHealthy {
		t.Errorf("good期望%s，实际: %s", ColorHealthy, statuses["good"])
	}
	if statuses["bad"] != ColorFailed {
		t.Errorf("bad期望%s，实际: %s", ColorFailed, statuses["bad"])
	}
}
