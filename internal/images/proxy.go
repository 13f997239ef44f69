package images

import (
	"bufio"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// ProxyPool hands out proxies for image downloads and caches one HTTP client
// per proxy. A nil or empty pool connects directly.
type ProxyPool struct {
	proxies []string
	timeout time.Duration

	mu      sync.Mutex
	next    int
	clients map[string]*http.Client
}

func NewProxyPool(proxies []string, timeout time.Duration) *ProxyPool {
	return &ProxyPool{
		proxies: proxies,
		timeout: timeout,
		clients: make(map[string]*http.Client),
	}
}

// LoadProxyPool reads one proxy URL per line; blank lines and lines starting
// with # are ignored. An empty path yields an empty pool.
func LoadProxyPool(path string, timeout time.Duration) (*ProxyPool, error) {
	if path == "" {
		return NewProxyPool(nil, timeout), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open proxy file: %w", err)
	}
	defer f.Close()

	var proxies []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := url.Parse(line); err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", line, err)
		}
		proxies = append(proxies, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read proxy file: %w", err)
	}

	return NewProxyPool(proxies, timeout), nil
}

func (p *ProxyPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.proxies)
}

// Random picks a proxy uniformly. Used once per chapter.
func (p *ProxyPool) Random() string {
	if p.Len() == 0 {
		return ""
	}
	return p.proxies[rand.Intn(len(p.proxies))]
}

// Next returns proxies in round-robin order.
func (p *ProxyPool) Next() string {
	if p.Len() == 0 {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	proxy := p.proxies[p.next%len(p.proxies)]
	p.next++
	return proxy
}

// Client returns the cached client for proxy; "" means a direct connection.
func (p *ProxyPool) Client(proxy string) *http.Client {
	if p == nil {
		return http.DefaultClient
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.clients[proxy]; ok {
		return c
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != "" {
		if u, err := url.Parse(proxy); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}

	c := &http.Client{Transport: transport, Timeout: p.timeout}
	p.clients[proxy] = c
	return c
}
