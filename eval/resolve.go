package eval

import (
	"casm/parser"
	"casm/types"
	"strconv"
	"strings"
)

// Resolve turns an out operand or if comparand into a value:
// a quoted string, a decimal integer, or the current value of a variable
func Resolve(operand string, store *Store) (types.Value, error) {
	if parser.IsQuoted(operand) {
		return parseStr(operand)
	}
	if strings.HasPrefix(operand, `"`) {
		return nil, failf(types.E_SYNTAX, "unterminated string %s", operand)
	}
	if isIntLiteral(operand) {
		return parseInt(operand)
	}

	val, ok := store.Get(operand)
	if !ok {
		return nil, failf(types.E_VARNF, "%q is not defined", operand)
	}
	return val, nil
}

// parseLiteral converts a declaration right-hand side to the declared type.
// Only literals are accepted; identifiers are a type error.
func parseLiteral(typ types.TypeCode, literal string) (types.Value, error) {
	switch typ {
	case types.TYPE_INT:
		if !isIntLiteral(literal) {
			return nil, failf(types.E_TYPE, "%s is not an int literal", literal)
		}
		return parseInt(literal)
	case types.TYPE_STR:
		if parser.IsQuoted(literal) {
			return parseStr(literal)
		}
		if strings.HasPrefix(literal, `"`) {
			return nil, failf(types.E_SYNTAX, "unterminated string %s", literal)
		}
		return nil, failf(types.E_TYPE, "%s is not a quoted str literal", literal)
	case types.TYPE_SML:
		f, ok := types.ParseFlag(literal)
		if !ok {
			return nil, failf(types.E_TYPE, "sml value must be 0 or 1, got %s", literal)
		}
		return f, nil
	default:
		return nil, failf(types.E_TYPE, "unsupported type %s", typ)
	}
}

func parseInt(lit string) (types.Value, error) {
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, failf(types.E_TYPE, "integer %s is out of range", lit)
	}
	return types.NewInt(n), nil
}

func parseStr(quoted string) (types.Value, error) {
	s, err := types.NewStr(parser.Unquote(quoted))
	if err != nil {
		return nil, failf(types.E_TYPE, "%v", err)
	}
	return s, nil
}

// isIntLiteral reports an optional '-' followed by one or more decimal digits
func isIntLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
