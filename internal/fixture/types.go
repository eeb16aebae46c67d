package fixture

import (
	"gopkg.in/yaml.v3"
)

// File is the root of a fixture file.
type File struct {
	// Version of the fixture format. Defaults to "1".
	Version string `yaml:"version"`
	// Cases in file order.
	Cases []Case `yaml:"cases"`
}

// Case is one subset evaluation with its expected verdict.
type Case struct {
	// Name identifies the case. Defaults to "case-<n>".
	Name string `yaml:"name"`
	// Actual is the structure under test.
	Actual yaml.Node `yaml:"actual"`
	// Subset is the structure expected inside Actual.
	Subset yaml.Node `yaml:"subset"`
	// Strict selects strict comparison.
	Strict bool `yaml:"strict,omitempty"`
	// Coercions names the loose coercion categories. Empty means the default set.
	Coercions []string `yaml:"coercions,omitempty"`
	// Want is the expected verdict.
	Want bool `yaml:"want"`
	// Mismatches lists the paths expected to differ when Want is false.
	Mismatches []string `yaml:"mismatches,omitempty"`
}
