// Package graph 组件依赖图模型：构建、校验与遍历规划
package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateNode 节点列表中存在重复标识
	ErrDuplicateNode = errors.New("graph: duplicate node")
	// ErrUnknownEndpoint 边引用了未声明的节点
	ErrUnknownEndpoint = errors.New("graph: unknown endpoint")
	// ErrCyclicGraph 图中存在环，无法作为依赖图使用
	ErrCyclicGraph = errors.New("graph: cyclic graph")
	// ErrNoRoots 图中没有根节点（仅当节点集为空时出现）
	ErrNoRoots = errors.New("graph: no root nodes")
)

// Edge 有向边：To 依赖 From
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph 组件依赖图（不可变，构建后只读）
type Graph struct {
	nodes []string
	edges []Edge
	// 邻接表与入度在构建时计算一次
	adjacency map[string][]string
	inDegree  map[string]int
}

// Build 从节点与边列表构建依赖图。
// 校验策略：节点重复与未声明端点均显式拒绝，不做隐式补全。
func Build(nodes []string, edges [][2]string) (*Graph, error) {
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n)
		}
		seen[n] = struct{}{}
	}

	g := &Graph{
		nodes:     append([]string(nil), nodes...),
		edges:     make([]Edge, 0, len(edges)),
		adjacency: make(map[string][]string, len(nodes)),
		inDegree:  make(map[string]int, len(nodes)),
	}
	for _, n := range g.nodes {
		g.inDegree[n] = 0
	}

	for _, e := range edges {
		from, to := e[0], e[1]
		if _, ok := seen[from]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, from)
		}
		if _, ok := seen[to]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, to)
		}
		g.edges = append(g.edges, Edge{From: from, To: to})
		g.adjacency[from] = append(g.adjacency[from], to)
		g.inDegree[to]++
	}
	return g, nil
}

// Nodes 返回声明顺序的节点列表副本
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Edges 返回边列表副本
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Len 节点数
func (g *Graph) Len() int {
	return len(g.nodes)
}

// InDegree 返回节点入度；未知节点返回0
func (g *Graph) InDegree(node string) int {
	return g.inDegree[node]
}

// Roots 返回入度为0的节点，按字典序排序保证确定性
func (g *Graph) Roots() []string {
	roots := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		if g.inDegree[n] == 0 {
			roots = append(roots, n)
		}
	}
	sort.Strings(roots)
	return roots
}

// IsAcyclic 基于Kahn算法检测是否无环，O(V+E)
func (g *Graph) IsAcyclic() bool {
	inDeg := make(map[string]int, len(g.inDegree))
	for n, d := range g.inDegree {
		inDeg[n] = d
	}

	queue := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		if inDeg[n] == 0 {
			queue = append(queue, n)
		}
	}

	visited := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range g.adjacency[n] {
			inDeg[next]--
			if inDeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	// 多重边会使入度多次递减，visited仍覆盖全部节点
	return visited == len(g.nodes)
}
