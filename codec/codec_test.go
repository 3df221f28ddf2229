package codec

import (
	"strings"
	"testing"
	"time"
)

type sample struct {
	Name string
	At   time.Time
}

func TestCBORDeterministicRoundTrip(t *testing.T) {
	cd := MustCBOR[sample](true)
	in := sample{Name: "n", At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	b1, err := cd.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b2, _ := cd.Encode(in)
	if string(b1) != string(b2) {
		t.Fatalf("deterministic encode produced differing bytes")
	}

	out, err := cd.Decode(b1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Name != in.Name || !out.At.Equal(in.At) {
		t.Fatalf("round trip: got %+v want %+v", out, in)
	}
}

func TestLimitRejectsOversizedPayload(t *testing.T) {
	cd := Limit[string]{Inner: String{}, MaxDecode: 4}

	if _, err := cd.Decode([]byte("12345")); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected size error, got %v", err)
	}
	v, err := cd.Decode([]byte("1234"))
	if err != nil || v != "1234" {
		t.Fatalf("within limit: v=%q err=%v", v, err)
	}
	// Encode is never capped.
	if b, err := cd.Encode("a long string well past the cap"); err != nil || len(b) == 0 {
		t.Fatalf("Encode: %v", err)
	}
}

func TestBytesIsIdentity(t *testing.T) {
	in := []byte{0x00, 0xff, 0x10}
	b, err := Bytes{}.Encode(in)
	if err != nil || &b[0] != &in[0] {
		t.Fatalf("Bytes.Encode must return the same slice")
	}
}
