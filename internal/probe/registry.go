package probe

import (
	"context"
	"sort"
	"sync"
)

// Registry 按组件标识分发探测器，未注册的组件走默认探测器
type Registry struct {
	mu       sync.RWMutex
	fallback Prober
	byNode   map[string]Prober
	kinds    map[string]string // node -> kind，仅用于自省展示
}

// NewRegistry 创建分发器，fallback 不能为空
func NewRegistry(fallback Prober) *Registry {
	return &Registry{
		fallback: fallback,
		byNode:   make(map[string]Prober),
		kinds:    make(map[string]string),
	}
}

// Register 为指定组件绑定探测器
func (r *Registry) Register(node, kind string, p Prober) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byNode[node] = p
	r.kinds[node] = kind
}

// Bindings 返回 node->kind 绑定快照，按节点名排序
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.kinds))
	for node, kind := range r.kinds {
		out = append(out, Binding{Node: node, Kind: kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}

// Binding 组件与探测器类型的绑定
type Binding struct {
	Node string `json:"component"`
	Kind string `json:"kind"`
}

// Probe 分发探测请求
func (r *Registry) Probe(ctx context.Context, node string) Result {
	r.mu.RLock()
	p, ok := r.byNode[node]
	r.mu.RUnlock()

	if !ok {
		p = r.fallback
	}
	return p.Probe(ctx, node)
}
