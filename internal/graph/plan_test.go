package graph

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	t.Run("BFS顺序且同层按字典序", func(t *testing.T) {
		// 根: Cache, Database；下一层: API
		g, _ := Build(
			[]string{"Database", "API", "Cache"},
			[][2]string{{"Database", "API"}, {"Cache", "API"}},
		)
		order, err := g.Plan()
		if err != nil {
			t.Fatalf("规划失败: %v", err)
		}
		want := []string{"Cache", "Database", "API"}
		if !reflect.DeepEqual(order, want) {
			t.Errorf("期望%v，实际: %v", want, order)
		}
	})

	t.Run("覆盖全部节点", func(t *testing.T) {
		g, _ := Build(
			[]string{"E", "D", "C", "B", "A"},
			[][2]string{{"A", "B"}, {"B", "C"}},
		)
		order, err := g.Plan()
		if err != nil {
			t.Fatalf("规划失败: %v", err)
		}
		if len(order) != g.Len() {
			t.Fatalf("期望%d个节点，实际: %d", g.Len(), len(order))
		}
		seen := make(map[string]int)
		for _, n := range order {
			seen[n]++
		}
		for _, n := range g.Nodes() {
			if seen[n] != 1 {
				t.Errorf("节点%s出现%d次", n, seen[n])
			}
		}
	})

	t.Run("多次规划结果一致", func(t *testing.T) {
		g, _ := Build(
			[]string{"X", "Y", "Z", "W"},
			[][2]string{{"X", "Z"}, {"Y", "Z"}, {"Z", "W"}},
		)
		first, _ := g.Plan()
		second, _ := g.Plan()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("规划不确定: %v vs %v", first, second)
		}
	})

	t.Run("空图返回ErrNoRoots", func(t *testing.T) {
		g, _ := Build(nil, nil)
		_, err := g.Plan()
		if !errors.Is(err, ErrNoRoots) {
			t.Errorf("期望ErrNoRoots，实际: %v", err)
		}
	})
}
