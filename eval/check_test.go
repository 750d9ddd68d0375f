package eval

import (
	"casm/source"
	"casm/types"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    []types.ErrorCode
	}{
		{"clean", "int x = 1\nif x == 1\nout x\nelse\nout 0\nend", nil},
		{"missing end", "int x = 1\nif x == 1\nout x", []types.ErrorCode{types.E_NOEND}},
		{"stray end", "out 1\nend", []types.ErrorCode{types.E_SYNTAX}},
		{"stray else", "else", []types.ErrorCode{types.E_SYNTAX}},
		{"nested if", "if a == 1\nif b == 2\nend\nend", []types.ErrorCode{types.E_SYNTAX, types.E_SYNTAX}},
		{"malformed if opens a block", "if x ==\nout 1\nelse\nout 2\nend", []types.ErrorCode{types.E_SYNTAX}},
		{"malformed if without end", "if x ==\nout 1", []types.ErrorCode{types.E_SYNTAX, types.E_NOEND}},
		{"bad literal", "sml f = 3", []types.ErrorCode{types.E_TYPE}},
		{"unknown", "jump 10", []types.ErrorCode{types.E_UNKNOWN}},
		{"malformed in", "in int x", []types.ErrorCode{types.E_SYNTAX}},
		{"undefined names are not checked", "out ghost", nil},
		{"does not read input", "in int x \"?\"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := NewReporter(nil, false)
			if err := Check(source.FromLines(strings.Split(tt.program, "\n")), rep); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, codes(rep.Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s\n%v", diff, rep.Diagnostics())
			}
		})
	}
}

func TestCheckMissingEndLine(t *testing.T) {
	rep := NewReporter(nil, false)
	Check(source.FromLines([]string{"out 1", "# note", "if x == 1", "out 2"}), rep)
	diags := rep.Diagnostics()
	if len(diags) != 1 || diags[0].Line != 3 {
		t.Errorf("diagnostics = %v, want one on line 3", diags)
	}
}
