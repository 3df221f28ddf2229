package rediscache

import (
	"context"
	"testing"

	c "github.com/unkn0wn-root/rediscache/codec"
)

type account struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}

func newTypedOverFake(t *testing.T) (Typed[account], *dialRecorder) {
	t.Helper()
	cc, rec, _ := newTestCache(t, nil)
	cc.StartUp()
	tc, err := NewTyped[account](cc, c.JSON[account]{})
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	return tc, rec
}

func TestTypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	tc, _ := newTypedOverFake(t)

	want := account{ID: "a-1", Balance: 250}
	if err := tc.Put(ctx, "acct", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := tc.Get(ctx, "acct")
	if err != nil || !ok || got != want {
		t.Fatalf("Get: got=%+v ok=%v err=%v", got, ok, err)
	}

	if err := tc.Delete(ctx, "acct"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := tc.Get(ctx, "acct"); err != nil || ok {
		t.Fatalf("Get after Delete should miss, ok=%v err=%v", ok, err)
	}
}

func TestTypedDecodeFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	tc, rec := newTypedOverFake(t)

	// Foreign bytes under our key: an error, not a silent miss.
	rec.srv.data["acct"] = "not json"
	if _, ok, err := tc.Get(ctx, "acct"); err == nil || ok {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestTypedMsgpackCodec(t *testing.T) {
	ctx := context.Background()
	cc, _, _ := newTestCache(t, nil)
	cc.StartUp()

	tc, err := NewTyped[account](cc, c.Msgpack[account]{})
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	want := account{ID: "m-1", Balance: -7}
	if err := tc.Put(ctx, "acct", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got, ok, err := tc.Get(ctx, "acct"); err != nil || !ok || got != want {
		t.Fatalf("Get: got=%+v ok=%v err=%v", got, ok, err)
	}
}

func TestNewTypedRequiresBothParts(t *testing.T) {
	cc, _, _ := newTestCache(t, nil)
	if _, err := NewTyped[account](nil, c.JSON[account]{}); err == nil {
		t.Fatalf("nil cache must be rejected")
	}
	if _, err := NewTyped[account](cc, nil); err == nil {
		t.Fatalf("nil codec must be rejected")
	}
}
