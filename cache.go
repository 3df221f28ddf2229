package rediscache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"
)

// cache is the concrete adapter. The connection handle, retry deadline and
// started flag are mutated only while mu is held; mu is also held across the
// full network round-trip of every operation, so at most one command is in
// flight at a time.
type cache struct {
	addr              string
	reconnectDelay    time.Duration
	failOnServerError bool

	mu    sync.Locker
	log   Logger
	clock Clock
	dial  dialFunc

	// guarded by mu
	handle          conn
	nextReconnectAt time.Time // meaningful only while handle == nil
	started         bool
}

var _ Cache = (*cache)(nil)

func newCache(opts Options) (*cache, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("rediscache: host is required")
	}
	if opts.Port <= 0 || opts.Port > 65535 {
		return nil, fmt.Errorf("rediscache: invalid port %d", opts.Port)
	}

	c := &cache{
		addr:              net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		failOnServerError: opts.FailOnServerError,
	}

	// defaults
	c.reconnectDelay = coalesce(opts.ReconnectDelay, defaultReconnectDelay)
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.clock = coalesce[Clock](opts.Clock, systemClock{})
	if opts.Mutex != nil {
		c.mu = opts.Mutex
	} else {
		c.mu = &sync.Mutex{}
	}
	c.dial = redisDial(c.addr)

	return c, nil
}

func (c *cache) Name() string     { return Name }
func (c *cache) IsBlocking() bool { return true }

func (c *cache) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && c.handle != nil
}

func (c *cache) StartUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
}

func (c *cache) ShutDown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = false
	if c.handle == nil {
		return nil
	}
	err := c.handle.Close()
	c.handle = nil
	if err != nil {
		c.log.Warn("closing connection", Fields{"addr": c.addr, "err": err.Error()})
	}
	return err
}

func (c *cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureConnected(ctx); err != nil {
		return nil, false, err
	}
	r, err := c.command(ctx, "GET", key)
	if err != nil {
		if c.suppressed(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if err := c.validateReply("GET", r, replyString, replyNil); err != nil {
		return nil, false, err
	}
	if r.kind == replyNil {
		return nil, false, nil
	}
	return []byte(r.str), true, nil
}

func (c *cache) Put(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	r, err := c.command(ctx, "SET", key, value)
	if err != nil {
		if c.suppressed(err) {
			return nil
		}
		return err
	}
	return c.validateReply("SET", r, replyString)
}

func (c *cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	r, err := c.command(ctx, "DEL", key)
	if err != nil {
		if c.suppressed(err) {
			return nil
		}
		return err
	}
	// DEL reports how many keys it removed; zero (key absent) is fine.
	return c.validateReply("DEL", r, replyInteger)
}

func (c *cache) FlushAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}
	r, err := c.command(ctx, "FLUSHALL")
	if err != nil {
		if c.suppressed(err) {
			return nil
		}
		return err
	}
	return c.validateReply("FLUSHALL", r, replyString)
}

// ensureConnected guarantees a live handle or a well-defined refusal. The
// guard must be held. A failed attempt pushes the retry deadline out by
// reconnectDelay so an unreachable server is not hammered.
func (c *cache) ensureConnected(ctx context.Context) error {
	if !c.started {
		return ErrNotStarted
	}
	if c.handle != nil {
		return nil
	}
	now := c.clock.Now()
	if now.Before(c.nextReconnectAt) {
		return ErrRetryPending
	}
	h, err := c.dial(ctx)
	if err != nil {
		c.nextReconnectAt = now.Add(c.reconnectDelay)
		c.log.Error("connect failed", Fields{
			"addr":     c.addr,
			"err":      err.Error(),
			"retry_in": c.reconnectDelay.String(),
		})
		return &ConnectError{Addr: c.addr, Err: err}
	}
	c.handle = h
	c.log.Info("connected", Fields{"addr": c.addr})
	return nil
}

// command executes one command on the live handle and classifies the outcome.
// The guard must be held and a handle must exist. A transport fault discards
// the handle without advancing the retry deadline, so the next operation may
// redial immediately. It never retries on its own.
func (c *cache) command(ctx context.Context, name string, args ...any) (reply, error) {
	argv := make([]any, 0, len(args)+1)
	argv = append(argv, name)
	argv = append(argv, args...)

	res, err := c.handle.Do(ctx, argv...)
	switch {
	case err == nil:
		return classifyReply(res), nil
	case isNilReply(err):
		return reply{kind: replyNil}, nil
	case isServerError(err):
		c.log.Warn("server error reply", Fields{"cmd": name, "err": err.Error()})
		return reply{}, &CommandError{Cmd: name, Err: fmt.Errorf("%w: %v", ErrServerReply, err)}
	default:
		c.log.Error("transport failure", Fields{"cmd": name, "err": err.Error()})
		c.dropHandle()
		return reply{}, &CommandError{Cmd: name, Err: err}
	}
}

// dropHandle discards the connection after a transport or protocol failure.
// The retry deadline is left alone: it predates the connection that just
// died, so the next operation reconnects with no delay.
func (c *cache) dropHandle() {
	if c.handle == nil {
		return
	}
	if err := c.handle.Close(); err != nil {
		c.log.Warn("closing connection", Fields{"addr": c.addr, "err": err.Error()})
	}
	c.handle = nil
}

// suppressed reports whether err is a server error reply that the configured
// policy logs without failing the operation.
func (c *cache) suppressed(err error) bool {
	return errors.Is(err, ErrServerReply) && !c.failOnServerError
}
