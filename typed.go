package rediscache

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/rediscache/codec"
)

// Typed is a typed view over any Cache. Values are run through a
// codec.Codec[V] on the way in and out; everything else (connection policy,
// serialization of operations, reply validation) is the wrapped Cache's
// business.
type Typed[V any] struct {
	c     Cache
	codec codec.Codec[V]
}

// NewTyped wraps c with a codec. Both must be non-nil.
func NewTyped[V any](c Cache, cd codec.Codec[V]) (Typed[V], error) {
	if c == nil {
		return Typed[V]{}, fmt.Errorf("rediscache: cache is required")
	}
	if cd == nil {
		return Typed[V]{}, fmt.Errorf("rediscache: codec is required")
	}
	return Typed[V]{c: c, codec: cd}, nil
}

// Get returns the decoded value on hit. Bytes that fail to decode surface as
// an error, not a miss: the entry exists, it just is not ours to interpret.
func (t Typed[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok, err := t.c.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := t.codec.Decode(raw)
	if err != nil {
		return zero, false, fmt.Errorf("rediscache: decode %q: %w", key, err)
	}
	return v, true, nil
}

func (t Typed[V]) Put(ctx context.Context, key string, value V) error {
	raw, err := t.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("rediscache: encode %q: %w", key, err)
	}
	return t.c.Put(ctx, key, raw)
}

func (t Typed[V]) Delete(ctx context.Context, key string) error {
	return t.c.Delete(ctx, key)
}
