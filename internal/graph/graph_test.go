package graph

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	t.Run("正常构建", func(t *testing.T) {
		g, err := Build(
			[]string{"Database", "API", "Cache"},
			[][2]string{{"Database", "API"}, {"Cache", "API"}},
		)
		if err != nil {
			t.Fatalf("构建失败: %v", err)
		}
		if g.Len() != 3 {
			t.Errorf("期望3个节点，实际: %d", g.Len())
		}
		if len(g.Edges()) != 2 {
			t.Errorf("期望2条边，实际: %d", len(g.Edges()))
		}
	})

	t.Run("重复节点", func(t *testing.T) {
		_, err := Build([]string{"A", "B", "A"}, nil)
		if !errors.Is(err, ErrDuplicateNode) {
			t.Errorf("期望ErrDuplicateNode，实际: %v", err)
		}
	})

	t.Run("未声明的边端点", func(t *testing.T) {
		_, err := Build([]string{"A"}, [][2]string{{"A", "B"}})
		if !errors.Is(err, ErrUnknownEndpoint) {
			t.Errorf("期望ErrUnknownEndpoint，实际: %v", err)
		}

		_, err = Build([]string{"B"}, [][2]string{{"A", "B"}})
		if !errors.Is(err, ErrUnknownEndpoint) {
			t.Errorf("期望ErrUnknownEndpoint，实际: %v", err)
		}
	})

	t.Run("空图可构建", func(t *testing.T) {
		g, err := Build(nil, nil)
		if err != nil {
			t.Fatalf("空图构建失败: %v", err)
		}
		if g.Len() != 0 {
			t.Errorf("期望0个节点，实际: %d", g.Len())
		}
	})
}

func TestInDegreeAndRoots(t *testing.T) {
	g, err := Build(
		[]string{"Database", "API", "Cache"},
		[][2]string{{"Database", "API"}, {"Cache", "API"}},
	)
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	if d := g.InDegree("API"); d != 2 {
		t.Errorf("API入度期望2，实际: %d", d)
	}
	if d := g.InDegree("Database"); d != 0 {
		t.Errorf("Database入度期望0，实际: %d", d)
	}

	roots := g.Roots()
	if len(roots) != 2 || roots[0] != "Cache" || roots[1] != "Database" {
		t.Errorf("期望根节点[Cache Database]，实际: %v", roots)
	}
}

func TestIsAcyclic(t *testing.T) {
	t.Run("无环图", func(t *testing.T) {
		g, _ := Build([]string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
		if !g.IsAcyclic() {
			t.Error("链式图应该无环")
		}
	})

	t.Run("两节点成环", func(t *testing.T) {
		g, _ := Build([]string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})
		if g.IsAcyclic() {
			t.Error("A->B->A 应检测为有环")
		}
	})

	t.Run("自环", func(t *testing.T) {
		g, _ := Build([]string{"A"}, [][2]string{{"A", "A"}})
		if g.IsAcyclic() {
			t.Error("自环应检测为有环")
		}
	})

	t.Run("多重边不影响检测", func(t *testing.T) {
		g, _ := Build([]string{"A", "B"}, [][2]string{{"A", "B"}, {"A", "B"}})
		if !g.IsAcyclic() {
			t.Error("重复边不构成环")
		}
	})

	t.Run("空图无环", func(t *testing.T) {
		g, _ := Build(nil, nil)
		if !g.IsAcyclic() {
			t.Error("空图应视为无环")
		}
	})
}
