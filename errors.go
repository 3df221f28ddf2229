package rediscache

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned by operations before StartUp or after
	// ShutDown.
	ErrNotStarted = errors.New("rediscache: not started")

	// ErrRetryPending is returned when no connection is held and the
	// reconnect delay from the last failed attempt has not elapsed. No
	// network I/O happens for such operations.
	ErrRetryPending = errors.New("rediscache: reconnect delay has not elapsed")

	// ErrUnexpectedReply marks a protocol-level failure: the server
	// answered, but with a reply kind the command cannot legally receive.
	// The connection is discarded since the stream may be desynchronized.
	ErrUnexpectedReply = errors.New("rediscache: unexpected reply kind")

	// ErrServerReply marks a well-formed error reply from the server for a
	// syntactically valid command. Surfaces to callers only when
	// Options.FailOnServerError is set.
	ErrServerReply = errors.New("rediscache: server reported error")
)

// ConnectError reports a failed attempt to establish the server link.
// The next attempt is not permitted before the reconnect delay elapses.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("rediscache: connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// CommandError reports a failure observed while executing one command on an
// established connection.
type CommandError struct {
	Cmd string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("rediscache: %s: %v", e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
