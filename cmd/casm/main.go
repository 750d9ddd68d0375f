package main

import (
	"bufio"
	"casm/config"
	"casm/eval"
	"casm/source"
	"casm/trace"
	"casm/types"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr, cfg.Color(os.Stderr)))
}

// run executes or checks the configured program and returns the exit status.
// Diagnostics never change the status of a normal run; only failing to open or
// read the program does.
func run(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, color bool) int {
	logger := log.New(stderr, "casm: ", 0)
	trace.Init(cfg.Trace, cfg.TraceFilters, stderr)

	src, err := openProgram(cfg.Program, stdin)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	defer src.Close()

	reporter := eval.NewReporter(stderr, color)

	if cfg.Check {
		if err := eval.Check(src, reporter); err != nil {
			logger.Printf("%v", err)
			return 1
		}
		if n := reporter.Count(); n > 0 {
			logger.Printf("%s: %d problem(s)", cfg.Program, n)
			return 1
		}
		return 0
	}

	out := bufio.NewWriter(stdout)
	it := eval.NewInterpreter(eval.Options{
		Stdout:   out,
		Stdin:    stdin,
		Reporter: reporter,
		MaxVars:  cfg.MaxVars,
	})
	runErr := it.Run(src)
	out.Flush()

	if cfg.DumpVars {
		dumpVars(stderr, it.Store())
	}

	if runErr != nil {
		logger.Printf("%v", runErr)
		return 1
	}
	return 0
}

// openProgram opens path, or wraps stdin when path is "-".
// A program read from stdin leaves nothing for in statements to read.
func openProgram(path string, stdin io.Reader) (*source.Source, error) {
	if path == "-" {
		return source.New(stdin), nil
	}
	return source.Open(path)
}

// dumpVars prints the variable table in declaration order
func dumpVars(w io.Writer, store *eval.Store) {
	fmt.Fprintf(w, "=== Variables (%d) ===\n", store.Len())
	for _, v := range store.Variables() {
		if v.Value.Type() == types.TYPE_STR {
			fmt.Fprintf(w, "%s (%s) = %q\n", v.Name, v.Value.Type(), v.Value.String())
			continue
		}
		fmt.Fprintf(w, "%s (%s) = %s\n", v.Name, v.Value.Type(), v.Value.String())
	}
}
