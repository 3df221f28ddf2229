// Package bigcache provides an in-process Cache backed by allegro/bigcache.
// Useful for tests and single-process deployments that want the same
// lifecycle contract as the Redis adapter without a remote store.
package bigcache

import (
	"context"
	"errors"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/rediscache"
)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

// Cache implements rediscache.Cache on an in-process BigCache. ShutDown
// releases the store; StartUp rebuilds it from the retained config.
type Cache struct {
	conf bc.Config

	mu      sync.Mutex
	c       *bc.BigCache // nil while shut down
	started bool
	initErr error
}

var _ rediscache.Cache = (*Cache)(nil)

func New(cfg Config) (*Cache, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Cache{conf: conf, c: c}, nil
}

func (l *Cache) Name() string     { return "LocalBigCache" }
func (l *Cache) IsBlocking() bool { return false }

func (l *Cache) IsHealthy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started && l.c != nil
}

func (l *Cache) StartUp() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = true
	if l.c != nil {
		return
	}
	c, err := bc.NewBigCache(l.conf)
	if err != nil {
		l.initErr = err
		return
	}
	l.c = c
	l.initErr = nil
}

func (l *Cache) ShutDown() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = false
	if l.c == nil {
		return nil
	}
	err := l.c.Close()
	l.c = nil
	return err
}

func (l *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return nil, false, err
	}
	b, err := l.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (l *Cache) Put(_ context.Context, key string, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	// TTL is the store-wide LifeWindow; BigCache has no per-entry expiry.
	return l.c.Set(key, value)
}

func (l *Cache) Delete(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	if err := l.c.Delete(key); err != nil && !errors.Is(err, bc.ErrEntryNotFound) {
		return err
	}
	return nil
}

func (l *Cache) FlushAll(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	return l.c.Reset()
}

func (l *Cache) usable() error {
	if !l.started || l.c == nil {
		if l.initErr != nil {
			return l.initErr
		}
		return rediscache.ErrNotStarted
	}
	return nil
}
