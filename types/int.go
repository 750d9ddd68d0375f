package types

import "strconv"

// IntValue represents a casm integer
type IntValue struct {
	Val int64
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Equal compares numerically against integers and flags
func (i IntValue) Equal(other Value) bool {
	n, ok := numeric(other)
	return ok && n == i.Val
}

// NewInt creates a new IntValue
func NewInt(val int64) IntValue {
	return IntValue{Val: val}
}

// numeric extracts the integer payload of an int or sml value
func numeric(v Value) (int64, bool) {
	switch n := v.(type) {
	case IntValue:
		return n.Val, true
	case FlagValue:
		return n.Int(), true
	default:
		return 0, false
	}
}
