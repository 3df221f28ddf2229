// Package rediscache implements a blocking cache backend stored in a Redis
// server. The adapter owns no data itself: it pins a single connection to the
// remote store, serializes every operation through it under one mutex, and
// validates that each reply has a shape the issuing command may legally
// receive.
//
// Connection policy:
//   - StartUp enables the cache; the connection is established lazily on the
//     first operation.
//   - A failed connect attempt is not retried until ReconnectDelay has passed;
//     operations inside that window fail fast without touching the network.
//   - A transport or protocol failure on an established connection discards
//     the handle but imposes no delay, so the very next operation may redial
//     immediately. This separates "server unreachable" from a network glitch
//     on a link that was healthy a moment ago.
//
// Components:
//   - Cache: the byte-oriented contract (Get/Put/Delete/FlushAll + lifecycle).
//   - Typed[V]: a typed view over any Cache via a codec.Codec[V].
//   - local: in-process Cache implementations (BigCache, Ristretto) for tests
//     and single-process deployments.
//   - log: adapters plugging zap, logrus or slog into the Logger interface.
//
// All operations are synchronous: the result is delivered before the call
// returns, and callers across goroutines are fully serialized on the one
// connection. Per-operation timeouts, AUTH and TLS are out of scope.
package rediscache
