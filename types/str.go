package types

import (
	"fmt"
	"unicode/utf8"
)

// MaxStrLen is the largest text value in bytes
const MaxStrLen = 255

// StrValue represents a bounded casm string
type StrValue struct {
	val string
}

// NewStr creates a new string value, rejecting text over MaxStrLen bytes
func NewStr(s string) (StrValue, error) {
	if len(s) > MaxStrLen {
		return StrValue{}, fmt.Errorf("string length %d exceeds maximum of %d bytes", len(s), MaxStrLen)
	}
	return StrValue{val: s}, nil
}

// TruncStr creates a string value, cutting s to MaxStrLen bytes
// without splitting a UTF-8 sequence
func TruncStr(s string) StrValue {
	if len(s) <= MaxStrLen {
		return StrValue{val: s}
	}
	cut := MaxStrLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return StrValue{val: s[:cut]}
}

// String returns the raw characters
func (s StrValue) String() string {
	return s.val
}

// Type returns the casm type
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two strings byte-wise
// casm strings are case-sensitive
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
