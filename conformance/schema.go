package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single casm program with its expected behaviour
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Program     string      `yaml:"program"`
	Stdin       string      `yaml:"stdin,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a run must produce
type Expectation struct {
	Output *string  `yaml:"output,omitempty"` // exact stdout, prompts included
	Errors []string `yaml:"errors,omitempty"` // diagnostic codes in order, e.g. E_VARNF
	Lines  []int    `yaml:"lines,omitempty"`  // line numbers of those diagnostics
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
