package rediscache

import (
	"context"
	"sync"
	"time"
)

// Name is the constant identifier every adapter instance reports for
// diagnostics.
const Name = "RedisCache"

// Cache is the backend contract consumed by the surrounding caching layer.
// All methods deliver their result synchronously, before returning.
type Cache interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// A communication or protocol failure returns (nil, false, err).
	// The returned slice is shared with the transport buffer; callers that
	// need to retain it past the next operation should copy.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key. The slice is passed by reference; the
	// adapter never retains it after the call returns.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key (best-effort). Absence of the key is not an error.
	Delete(ctx context.Context, key string) error

	// FlushAll wipes ALL data in the remote store. Test-fixture escape
	// hatch, not meant for production traffic.
	FlushAll(ctx context.Context) error

	// Name returns a constant identifier for diagnostics.
	Name() string

	// IsBlocking reports whether calls may stall on I/O. Always true for
	// the Redis adapter.
	IsBlocking() bool

	// IsHealthy is a snapshot: started and a live connection is held.
	IsHealthy() bool

	// StartUp enables the cache. It does not connect; the first operation
	// does. Idempotent.
	StartUp()

	// ShutDown disables the cache and releases the connection. Idempotent,
	// and safe to call concurrently with in-flight operations. After it
	// returns, operations fail fast until StartUp is called again.
	ShutDown() error
}

// Options configure the adapter. Host and Port are required; everything else
// has a usable default.
type Options struct {
	// Required
	Host string
	Port int

	// ReconnectDelay is the minimum wait between failed connection
	// attempts. 0 => 1s.
	ReconnectDelay time.Duration

	// Mutex serializes all adapter operations. The adapter takes ownership
	// and never exposes it. nil => a private sync.Mutex.
	Mutex sync.Locker

	// Logger receives diagnostics. Not owned by the adapter and must
	// outlive it. nil => NopLogger.
	Logger Logger

	// Clock supplies the time used for reconnect deadlines. nil => wall
	// clock. Injected so tests can drive the retry window directly.
	Clock Clock

	// FailOnServerError makes a well-formed error reply from the server
	// fail the operation instead of only being logged. Either way the
	// connection is kept: an error reply is a normal, in-sync reply.
	FailOnServerError bool
}

// New builds a Redis-backed Cache from opts. The remote store is not
// contacted until the first operation after StartUp.
func New(opts Options) (Cache, error) {
	return newCache(opts)
}
