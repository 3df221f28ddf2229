package bigcache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unkn0wn-root/rediscache"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(Config{LifeWindow: 10 * time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.ShutDown() })
	return c
}

func TestLifecycleAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, rediscache.ErrNotStarted) {
		t.Fatalf("Get before StartUp: %v", err)
	}

	c.StartUp()
	if !c.IsHealthy() {
		t.Fatalf("expected healthy after StartUp")
	}
	if err := c.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, ok, err := c.Get(ctx, "k"); err != nil || !ok || !bytes.Equal(v, []byte("v")) {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(ctx, "absent"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("Get after Delete should miss")
	}
}

func TestFlushAllAndRestart(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	c.StartUp()

	if err := c.Put(ctx, "a", []byte("1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.FlushAll(ctx); err != nil {
		t.Fatalf("FlushAll: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatalf("Get after FlushAll should miss")
	}

	// ShutDown drops the store; StartUp rebuilds an empty one.
	if err := c.ShutDown(); err != nil {
		t.Fatalf("ShutDown: %v", err)
	}
	if err := c.ShutDown(); err != nil {
		t.Fatalf("second ShutDown: %v", err)
	}
	if c.IsHealthy() {
		t.Fatalf("expected unhealthy after ShutDown")
	}
	c.StartUp()
	if !c.IsHealthy() {
		t.Fatalf("expected healthy after restart")
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatalf("restarted local store must start empty")
	}
}
