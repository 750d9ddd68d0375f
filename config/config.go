// Package config collects casm settings from the environment and the command line.
// Flags override environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// Environment variables read by Load
const (
	EnvTrace       = "CASM_TRACE"
	EnvTraceFilter = "CASM_TRACE_FILTER"
	EnvMaxVars     = "CASM_MAX_VARS"
	EnvNoColor     = "NO_COLOR"
)

// ErrUsage is returned when no program file was given
var ErrUsage = errors.New("usage: casm [flags] <file.casm | ->")

// Config holds everything the casm command needs to run a program
type Config struct {
	Program      string // path, or "-" for stdin
	Check        bool
	DumpVars     bool
	Trace        bool
	TraceFilters []string
	MaxVars      int
	NoColor      bool
}

// Load parses args (without the program name) on top of environment defaults.
// Flag errors and usage text are written to stderr.
func Load(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("casm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.Check, "check", false, "Check syntax and block structure without executing")
	fs.BoolVar(&cfg.DumpVars, "dump-vars", false, "Print all variables to stderr after the run")
	fs.BoolVar(&cfg.Trace, "trace", env.Bool(EnvTrace), "Enable execution tracing")
	traceFilter := fs.String("trace-filter", env.Str(EnvTraceFilter), "Trace filter patterns, comma separated (e.g. 'out,if')")
	fs.IntVar(&cfg.MaxVars, "max-vars", env.Int(EnvMaxVars, 0), "Maximum number of variables (0 = unlimited)")
	fs.BoolVar(&cfg.NoColor, "no-color", env.Has(EnvNoColor), "Disable coloured diagnostics")
	fs.Usage = func() {
		fmt.Fprintln(stderr, ErrUsage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return nil, ErrUsage
	}
	if cfg.MaxVars < 0 {
		err := fmt.Errorf("max-vars must not be negative, got %d", cfg.MaxVars)
		fmt.Fprintln(stderr, err)
		return nil, err
	}

	cfg.Program = fs.Arg(0)
	cfg.TraceFilters = splitFilters(*traceFilter)
	return cfg, nil
}

// Color reports whether diagnostics written to f should be coloured
func (c *Config) Color(f *os.File) bool {
	if c.NoColor || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func splitFilters(s string) []string {
	if s == "" {
		return nil
	}
	var filters []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}
