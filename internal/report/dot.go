package report

import (
	"fmt"
	"strings"

	"github.com/taoyao-code/graph-health/internal/graph"
)

// 着色类别对应的Graphviz填充色
var dotColors = map[string]string{
	ColorHealthy: "palegreen",
	ColorFailed:  "lightcoral",
}

// DOT 把依赖图与节点状态渲染为Graphviz DOT文本。
// 纯文本输出，图片编码由边界适配器自行决定。
func DOT(g *graph.Graph, statuses map[string]string) string {
	var b strings.Builder
	b.WriteString("digraph health {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled];\n")

	for _, n := range g.Nodes() {
		color, ok := dotColors[statuses[n]]
		if !ok {
			color = "lightgray"
		}
		fmt.Fprintf(&b, "  %s [fillcolor=%s];\n", quoteID(n), color)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -> %s;\n", quoteID(e.From), quoteID(e.To))
	}
	b.WriteString("}\n")
	return b.String()
}

// quoteID DOT标识符转义
func quoteID(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
