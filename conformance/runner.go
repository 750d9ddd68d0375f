package conformance

import (
	"casm/eval"
	"casm/types"
	"fmt"
	"strings"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Run executes a single test case in a fresh interpreter
func Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	if strings.TrimSpace(test.Test.Program) == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no program",
		}
	}

	program := strings.Split(strings.TrimSuffix(test.Test.Program, "\n"), "\n")
	report := eval.Execute(program, strings.NewReader(test.Test.Stdin))

	err := checkExpectation(test.Test.Expect, report)
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares a run against the expected output and diagnostics.
// A missing errors list means the run must be diagnostic-free.
func checkExpectation(expect Expectation, report eval.Report) error {
	if expect.Output != nil && *expect.Output != report.Output {
		return fmt.Errorf("expected output %q, got %q", *expect.Output, report.Output)
	}

	if len(expect.Errors) != len(report.Diagnostics) {
		return fmt.Errorf("expected %d diagnostics %v, got %d: %v",
			len(expect.Errors), expect.Errors, len(report.Diagnostics), report.Diagnostics)
	}
	for i, name := range expect.Errors {
		code, ok := types.ErrorFromString(name)
		if !ok {
			return fmt.Errorf("unknown error code: %s", name)
		}
		if got := report.Diagnostics[i].Code; got != code {
			return fmt.Errorf("diagnostic %d: expected %s, got %s (%v)", i, name, got, report.Diagnostics[i])
		}
	}

	if len(expect.Lines) > 0 {
		if len(expect.Lines) != len(report.Diagnostics) {
			return fmt.Errorf("expected diagnostics on lines %v, got %v", expect.Lines, report.Diagnostics)
		}
		for i, line := range expect.Lines {
			if got := report.Diagnostics[i].Line; got != line {
				return fmt.Errorf("diagnostic %d: expected line %d, got %d", i, line, got)
			}
		}
	}

	return nil
}
