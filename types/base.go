package types

// ErrorCode identifies a kind of casm diagnostic
type ErrorCode int

const (
	E_NONE     ErrorCode = 0
	E_SYNTAX   ErrorCode = 1 // malformed statement shape
	E_UNKNOWN  ErrorCode = 2 // unrecognized leading keyword
	E_VARNF    ErrorCode = 3 // identifier resolves to nothing
	E_TYPE     ErrorCode = 4 // literal or input does not conform to its type
	E_CONVERT  ErrorCode = 5 // int input is not a base-10 integer
	E_EOF      ErrorCode = 6 // input stream closed mid-read
	E_NOEND    ErrorCode = 7 // conditional block never closed
	E_CAPACITY ErrorCode = 8 // variable store is full
)

// String returns the string name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_SYNTAX:
		return "E_SYNTAX"
	case E_UNKNOWN:
		return "E_UNKNOWN"
	case E_VARNF:
		return "E_VARNF"
	case E_TYPE:
		return "E_TYPE"
	case E_CONVERT:
		return "E_CONVERT"
	case E_EOF:
		return "E_EOF"
	case E_NOEND:
		return "E_NOEND"
	case E_CAPACITY:
		return "E_CAPACITY"
	default:
		return "E_UNKNOWN_CODE"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "no error"
	case E_SYNTAX:
		return "syntax error"
	case E_UNKNOWN:
		return "unknown command"
	case E_VARNF:
		return "undefined variable"
	case E_TYPE:
		return "type mismatch"
	case E_CONVERT:
		return "input conversion failed"
	case E_EOF:
		return "input exhausted"
	case E_NOEND:
		return "missing end"
	case E_CAPACITY:
		return "too many variables"
	default:
		return "unknown error"
	}
}

// ErrorFromString converts a string like "E_SYNTAX" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	for code := E_NONE; code <= E_CAPACITY; code++ {
		if code.String() == s {
			return code, true
		}
	}
	return E_NONE, false
}

// Value is the interface all casm values implement
type Value interface {
	Type() TypeCode
	String() string   // printable rendering used by out
	Equal(Value) bool // casm == semantics
}
