package graph

import "sort"

// Plan 计算探测的展示顺序：从全部根节点出发做BFS，
// 同层节点按字典序排序保证确定性。
//
// 返回的顺序只用于结果排序与日志展示，探测集合始终是全部声明节点：
// BFS未覆盖到的节点按字典序追加在末尾。
// 仅当节点集为空时返回 ErrNoRoots（非空无环图必然存在根节点）。
func (g *Graph) Plan() ([]string, error) {
	roots := g.Roots()
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	order := make([]string, 0, len(g.nodes))
	visited := make(map[string]struct{}, len(g.nodes))

	level := roots
	for len(level) > 0 {
		sort.Strings(level)
		next := make([]string, 0)
		for _, n := range level {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			order = append(order, n)
			for _, child := range g.adjacency[n] {
				if _, ok := visited[child]; !ok {
					next = append(next, child)
				}
			}
		}
		level = next
	}

	// 兜底：未被BFS覆盖的节点仍需探测
	if len(order) < len(g.nodes) {
		rest := make([]string, 0, len(g.nodes)-len(order))
		for _, n := range g.nodes {
			if _, ok := visited[n]; !ok {
				rest = append(rest, n)
			}
		}
		sort.Strings(rest)
		order = append(order, rest...)
	}
	return order, nil
}
