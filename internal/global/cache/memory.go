package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Memory 进程内缓存，多实例部署时各实例互不共享
type Memory struct {
	items *ttlcache.Cache[string, string]
}

func NewMemory() *Memory {
	return &Memory{
		items: ttlcache.New[string, string](
			ttlcache.WithDisableTouchOnHit[string, string](),
		),
	}
}

// Start 定期清理过期项，阻塞直到 Stop
func (m *Memory) Start() {
	m.items.Start()
}

func (m *Memory) Stop() {
	m.items.Stop()
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	item := m.items.Get(key)
	if item == nil || item.IsExpired() {
		return "", false, nil
	}
	return item.Value(), true, nil
}

func (m *Memory) Put(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	m.items.Set(key, value, ttl)
	return nil
}

var _ Store = (*Memory)(nil)
