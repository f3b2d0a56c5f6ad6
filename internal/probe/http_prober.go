package probe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// HTTPProber 通过 HTTP GET 探测组件，2xx/3xx 视为健康
type HTTPProber struct {
	client *http.Client
	// targets 组件标识到探测URL的映射
	targets map[string]string
}

// NewHTTPProber 创建HTTP探测器
func NewHTTPProber(targets map[string]string, timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProber{
		client:  &http.Client{Timeout: timeout},
		targets: targets,
	}
}

// Probe 执行HTTP探测
func (p *HTTPProber) Probe(ctx context.Context, node string) Result {
	url, ok := p.targets[node]
	if !ok {
		return Failed(node, 0, fmt.Errorf("no http target for %q", node))
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Failed(node, time.Since(start), err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Failed(node, time.Since(start), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Failed(node, time.Since(start), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return OK(node, time.Since(start))
}

// TCPProber 通过TCP拨号探测组件可达性
type TCPProber struct {
	dialer  *net.Dialer
	targets map[string]string
}

// NewTCPProber 创建TCP探测器
func NewTCPProber(targets map[string]string, timeout time.Duration) *TCPProber {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &TCPProber{
		dialer:  &net.Dialer{Timeout: timeout},
		targets: targets,
	}
}

// Probe 执行TCP探测
func (p *TCPProber) Probe(ctx context.Context, node string) Result {
	addr, ok := p.targets[node]
	if !ok {
		return Failed(node, 0, fmt.Errorf("no tcp target for %q", node))
	}

	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Failed(node, time.Since(start), err)
	}
	_ = conn.Close()
	return OK(node, time.Since(start))
}
