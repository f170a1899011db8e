package live

import (
	"context"
	"sync"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

// SettingsSource is the read side of the settings repository.
type SettingsSource interface {
	Get(ctx context.Context) (model.SystemSettings, error)
}

// SettingsCache keeps the latest system settings in memory so the gate
// check on every booking attempt does not hit the database. The cache
// is invalidated by the hub whenever a settings-changed marker arrives,
// so the gate still sees warden toggles at confirmation time rather
// than a page-load-time copy.
type SettingsCache struct {
	src SettingsSource

	mu     sync.RWMutex
	cached *model.SystemSettings
}

// NewSettingsCache wires the cache to its source and subscribes it to
// the hub's settings channel for invalidation.
func NewSettingsCache(src SettingsSource, hub *Hub) *SettingsCache {
	c := &SettingsCache{src: src}
	ch, _ := hub.SubscribeSettings()
	go func() {
		for range ch {
			c.Invalidate()
		}
	}()
	return c
}

// Get returns the cached settings, reading through to the source on a
// miss. Errors from the source are returned as-is; nothing stale is
// served on error.
func (c *SettingsCache) Get(ctx context.Context) (model.SystemSettings, error) {
	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	s, err := c.src.Get(ctx)
	if err != nil {
		return model.SystemSettings{}, err
	}
	c.mu.Lock()
	c.cached = &s
	c.mu.Unlock()
	return s, nil
}

// Invalidate drops the cached copy; the next Get re-reads the source.
func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}
