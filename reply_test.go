package rediscache

import "testing"

func TestClassifyReply(t *testing.T) {
	cases := []struct {
		in   any
		want replyKind
	}{
		{nil, replyNil},
		{"OK", replyString},
		{[]byte("raw"), replyString},
		{int64(3), replyInteger},
		{[]any{"a", "b"}, replyArray},
		{3.14, replyUnknown},
		{true, replyUnknown},
	}
	for _, c := range cases {
		if got := classifyReply(c.in).kind; got != c.want {
			t.Fatalf("classifyReply(%#v) = %v, want %v", c.in, got, c.want)
		}
	}

	// Payloads carried through for the kinds that have one.
	if r := classifyReply("v"); r.str != "v" {
		t.Fatalf("string payload lost: %+v", r)
	}
	if r := classifyReply(int64(7)); r.num != 7 {
		t.Fatalf("integer payload lost: %+v", r)
	}
}

func TestReplyKindString(t *testing.T) {
	for k, want := range map[replyKind]string{
		replyNil:     "nil",
		replyString:  "string",
		replyInteger: "integer",
		replyArray:   "array",
		replyUnknown: "unknown",
	} {
		if k.String() != want {
			t.Fatalf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}
