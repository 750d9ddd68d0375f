package types

// TypeCode represents the three built-in casm types
type TypeCode int

const (
	TYPE_INT TypeCode = 0
	TYPE_STR TypeCode = 1
	TYPE_SML TypeCode = 2
)

// String returns the keyword used to declare the type
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT:
		return "int"
	case TYPE_STR:
		return "str"
	case TYPE_SML:
		return "sml"
	default:
		return "unknown"
	}
}

// TypeFromKeyword maps a declaration keyword to its type code
func TypeFromKeyword(kw string) (TypeCode, bool) {
	switch kw {
	case "int":
		return TYPE_INT, true
	case "str":
		return TYPE_STR, true
	case "sml":
		return TYPE_SML, true
	default:
		return 0, false
	}
}
