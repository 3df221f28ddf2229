package rediscache

// replyKind classifies the decoded result of one command. The client library
// owns the wire format; this layer only cares about the shape it hands back.
// Status replies ("OK", "PONG") surface as strings.
type replyKind int

const (
	replyNil replyKind = iota
	replyString
	replyInteger
	replyArray
	replyUnknown
)

func (k replyKind) String() string {
	switch k {
	case replyNil:
		return "nil"
	case replyString:
		return "string"
	case replyInteger:
		return "integer"
	case replyArray:
		return "array"
	default:
		return "unknown"
	}
}

// reply is the raw outcome of one command execution. It lives only for the
// duration of validation and extraction and never escapes the adapter.
type reply struct {
	kind replyKind
	str  string
	num  int64
	arr  []any
}

// classifyReply maps a go-redis Do result into a reply. Anything outside the
// shapes our commands produce is replyUnknown and will fail validation.
func classifyReply(v any) reply {
	switch rv := v.(type) {
	case nil:
		return reply{kind: replyNil}
	case string:
		return reply{kind: replyString, str: rv}
	case []byte:
		return reply{kind: replyString, str: string(rv)}
	case int64:
		return reply{kind: replyInteger, num: rv}
	case []any:
		return reply{kind: replyArray, arr: rv}
	default:
		return reply{kind: replyUnknown}
	}
}

// validateReply checks that r's kind is one the command may legally receive.
// A mismatch means the stream is likely desynchronized: it is logged, the
// handle is discarded (no retry delay) and a protocol failure is returned.
// The guard must be held.
func (c *cache) validateReply(cmd string, r reply, valid ...replyKind) error {
	for _, k := range valid {
		if r.kind == k {
			return nil
		}
	}
	c.log.Error("unexpected reply kind", Fields{"cmd": cmd, "kind": r.kind.String()})
	c.dropHandle()
	return &CommandError{Cmd: cmd, Err: ErrUnexpectedReply}
}
