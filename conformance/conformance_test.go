package conformance

import (
	"casm/eval"
	"casm/types"
	"strings"
	"testing"
)

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests(TestPath)
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}

	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	results := RunAll(tests)
	stats := ComputeStats(results)

	// Group results by file for organized output
	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for file, fileResults := range fileGroups {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						t.Errorf("Test failed: %v", result.Error)
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests(TestPath)
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	files := make(map[string]bool)
	for i, test := range tests {
		files[test.File] = true

		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		if strings.TrimSpace(test.Test.Program) == "" {
			t.Errorf("Test %s in %s has no program", test.Test.Name, test.File)
		}
		if test.Test.Expect.Output == nil && len(test.Test.Expect.Errors) == 0 {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}
		for _, name := range test.Test.Expect.Errors {
			if _, ok := types.ErrorFromString(name); !ok {
				t.Errorf("Test %s in %s expects unknown error %s", test.Test.Name, test.File, name)
			}
		}
	}

	if len(files) < 4 {
		t.Errorf("Expected at least 4 suite files, got %d", len(files))
	}
}

func TestLoadAllTestsMissingDir(t *testing.T) {
	if _, err := LoadAllTests("does-not-exist"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestCheckExpectation(t *testing.T) {
	out := "5\n"
	report := eval.Report{
		Output:      "5\n",
		Diagnostics: []eval.Diagnostic{{Line: 2, Code: types.E_VARNF}},
	}

	tests := []struct {
		name   string
		expect Expectation
		pass   bool
	}{
		{"match", Expectation{Output: &out, Errors: []string{"E_VARNF"}, Lines: []int{2}}, true},
		{"output ignored when unset", Expectation{Errors: []string{"E_VARNF"}}, true},
		{"wrong output", Expectation{Output: new(string), Errors: []string{"E_VARNF"}}, false},
		{"missing diagnostic", Expectation{Output: &out}, false},
		{"wrong code", Expectation{Errors: []string{"E_TYPE"}}, false},
		{"unknown code", Expectation{Errors: []string{"E_BOGUS"}}, false},
		{"wrong line", Expectation{Errors: []string{"E_VARNF"}, Lines: []int{3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExpectation(tt.expect, report)
			if (err == nil) != tt.pass {
				t.Errorf("checkExpectation pass = %v, want %v (err %v)", err == nil, tt.pass, err)
			}
		})
	}
}

func TestRunSkips(t *testing.T) {
	res := Run(LoadedTest{Test: TestCase{Name: "s", Skip: "not yet", Program: "out 1"}})
	if !res.Skipped || res.SkipReason != "not yet" {
		t.Errorf("unexpected result %+v", res)
	}

	res = Run(LoadedTest{Test: TestCase{Name: "empty"}})
	if !res.Skipped {
		t.Errorf("empty program should be skipped: %+v", res)
	}

	stats := ComputeStats([]TestResult{{Passed: true}, {Skipped: true}, {}})
	if got := FormatStats(stats); got != "1 passed, 1 failed, 1 skipped (3 total)" {
		t.Errorf("FormatStats = %q", got)
	}
}
