package types

// FlagValue represents an sml value, an integer restricted to 0 or 1
type FlagValue struct {
	Val bool
}

// Type returns the type code for flags
func (f FlagValue) Type() TypeCode {
	return TYPE_SML
}

// String returns "1" or "0"
func (f FlagValue) String() string {
	if f.Val {
		return "1"
	}
	return "0"
}

// Int returns the flag as 0 or 1
func (f FlagValue) Int() int64 {
	if f.Val {
		return 1
	}
	return 0
}

// Equal compares numerically against integers and flags
func (f FlagValue) Equal(other Value) bool {
	n, ok := numeric(other)
	return ok && n == f.Int()
}

// NewFlag creates a new FlagValue
func NewFlag(val bool) FlagValue {
	return FlagValue{Val: val}
}

// ParseFlag accepts exactly "0" or "1"
func ParseFlag(s string) (FlagValue, bool) {
	switch s {
	case "0":
		return NewFlag(false), true
	case "1":
		return NewFlag(true), true
	default:
		return FlagValue{}, false
	}
}
