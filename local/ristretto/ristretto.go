// Package ristretto provides an in-process Cache backed by dgraph-io/ristretto.
// Same lifecycle contract as the Redis adapter, no remote store.
package ristretto

import (
	"context"
	"errors"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/rediscache"
)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

// Cache implements rediscache.Cache on an in-process Ristretto cache. Entry
// cost is the value length in bytes. ShutDown releases the store; StartUp
// rebuilds it from the retained config.
type Cache struct {
	conf rc.Config

	mu      sync.Mutex
	c       *rc.Cache // nil while shut down
	started bool
	initErr error
}

var _ rediscache.Cache = (*Cache)(nil)

func New(cfg Config) (*Cache, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	conf := rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	}
	c, err := rc.NewCache(&conf)
	if err != nil {
		return nil, err
	}
	return &Cache{conf: conf, c: c}, nil
}

func (l *Cache) Name() string     { return "LocalRistretto" }
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
	conf := l.conf
	c, err := rc.NewCache(&conf)
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
	l.c.Wait()
	l.c.Close()
	l.c = nil
	return nil
}

func (l *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return nil, false, err
	}
	v, ok := l.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// unexpected entry shape; drop it
		l.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (l *Cache) Put(_ context.Context, key string, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	// Admission is best-effort; a rejected write is not a failure. Wait
	// makes an accepted write visible before Put returns, matching the
	// synchronous contract.
	l.c.Set(key, value, int64(len(value)))
	l.c.Wait()
	return nil
}

func (l *Cache) Delete(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	l.c.Del(key)
	return nil
}

func (l *Cache) FlushAll(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.usable(); err != nil {
		return err
	}
	l.c.Clear()
	return nil
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
