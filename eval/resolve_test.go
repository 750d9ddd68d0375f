package eval

import (
	"casm/types"
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	store := NewStore(0)
	store.Set("x", types.NewInt(5))
	store.Set("flag", types.NewFlag(true))

	tests := []struct {
		operand string
		want    string
		typ     types.TypeCode
	}{
		{`"hello world"`, "hello world", types.TYPE_STR},
		{`"42"`, "42", types.TYPE_STR},
		{`""`, "", types.TYPE_STR},
		{"42", "42", types.TYPE_INT},
		{"-42", "-42", types.TYPE_INT},
		{"x", "5", types.TYPE_INT},
		{"flag", "1", types.TYPE_SML},
	}

	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			val, err := Resolve(tt.operand, store)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.operand, err)
			}
			if val.String() != tt.want || val.Type() != tt.typ {
				t.Errorf("Resolve(%q) = %v (%v), want %v (%v)", tt.operand, val, val.Type(), tt.want, tt.typ)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	store := NewStore(0)

	tests := []struct {
		operand string
		code    types.ErrorCode
	}{
		{"missing", types.E_VARNF},
		{"-", types.E_VARNF},
		{"12abc", types.E_VARNF},
		{`"open`, types.E_SYNTAX},
		{"99999999999999999999", types.E_TYPE},
	}

	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			_, err := Resolve(tt.operand, store)
			var ee *EvalError
			if !errors.As(err, &ee) {
				t.Fatalf("Resolve(%q) error = %v, want *EvalError", tt.operand, err)
			}
			if ee.Code != tt.code {
				t.Errorf("code = %v, want %v", ee.Code, tt.code)
			}
		})
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		typ     types.TypeCode
		literal string
		want    string
		code    types.ErrorCode
	}{
		{types.TYPE_INT, "12", "12", types.E_NONE},
		{types.TYPE_INT, "-0", "0", types.E_NONE},
		{types.TYPE_INT, "1.5", "", types.E_TYPE},
		{types.TYPE_INT, "x", "", types.E_TYPE},
		{types.TYPE_STR, `"ok"`, "ok", types.E_NONE},
		{types.TYPE_STR, "ok", "", types.E_TYPE},
		{types.TYPE_STR, "12", "", types.E_TYPE},
		{types.TYPE_SML, "0", "0", types.E_NONE},
		{types.TYPE_SML, "1", "1", types.E_NONE},
		{types.TYPE_SML, "2", "", types.E_TYPE},
		{types.TYPE_SML, "-1", "", types.E_TYPE},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+" "+tt.literal, func(t *testing.T) {
			val, err := parseLiteral(tt.typ, tt.literal)
			if tt.code == types.E_NONE {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				if val.Type() != tt.typ || val.String() != tt.want {
					t.Errorf("got %v (%v), want %s", val, val.Type(), tt.want)
				}
				return
			}
			var ee *EvalError
			if !errors.As(err, &ee) || ee.Code != tt.code {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}
