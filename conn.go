package rediscache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// conn is the live link to the remote store. Present only while communication
// is believed healthy; the adapter closes a handle exactly once.
type conn interface {
	// Do sends one command (name first, then its arguments) and blocks
	// until a reply arrives or the transport fails.
	Do(ctx context.Context, args ...any) (any, error)
	Close() error
}

type dialFunc func(ctx context.Context) (conn, error)

// redisConn pins a single connection out of a dedicated single-connection
// client. The client's own retry machinery is disabled: failure handling and
// retry timing belong to the adapter.
type redisConn struct {
	client *redis.Client
	pinned *redis.Conn
}

func redisDial(addr string) dialFunc {
	return func(ctx context.Context) (conn, error) {
		client := redis.NewClient(&redis.Options{
			Addr:         addr,
			PoolSize:     1,
			MinIdleConns: 0,
			MaxRetries:   -1,
			// Block until the transport answers; the adapter enforces
			// no per-operation deadline.
			ReadTimeout:  -1,
			WriteTimeout: -1,
		})
		pinned := client.Conn()
		if err := pinned.Ping(ctx).Err(); err != nil {
			_ = pinned.Close()
			_ = client.Close()
			return nil, err
		}
		return &redisConn{client: client, pinned: pinned}, nil
	}
}

func (c *redisConn) Do(ctx context.Context, args ...any) (any, error) {
	cmd := redis.NewCmd(ctx, args...)
	_ = c.pinned.Process(ctx, cmd)
	return cmd.Result()
}

func (c *redisConn) Close() error {
	cerr := c.pinned.Close()
	if err := c.client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return cerr
}

// isNilReply reports whether err is the client library's "no value" marker
// (a missing key on GET), which is a normal reply, not a failure.
func isNilReply(err error) bool {
	return errors.Is(err, redis.Nil)
}

// isServerError reports whether err is a well-formed error reply from the
// server rather than a transport fault. redis.Nil also satisfies redis.Error
// and must be handled before this check.
func isServerError(err error) bool {
	var re redis.Error
	return errors.As(err, &re)
}
