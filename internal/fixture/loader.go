package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"array-subset/container"
	"array-subset/options"
)

// LoadFile loads and parses a fixture file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
	}
}

func validate(f *File) error {
	if f.Version != "1" {
		return fmt.Errorf("unsupported fixture version %q", f.Version)
	}

	seen := make(map[string]struct{}, len(f.Cases))

	for i := range f.Cases {
		c := &f.Cases[i]
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}

		seen[c.Name] = struct{}{}

		if _, err := c.Categories(); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}

		if c.Want && len(c.Mismatches) > 0 {
			return fmt.Errorf("case %q: mismatches given for a matching case", c.Name)
		}
	}

	return nil
}

// Inputs normalizes the actual and subset documents of c.
func (c *Case) Inputs() (actual, subset *container.Container, err error) {
	actual, err = container.Normalize(&c.Actual)
	if err != nil {
		return nil, nil, fmt.Errorf("case %q: failed to normalize actual: %w", c.Name, err)
	}

	subset, err = container.Normalize(&c.Subset)
	if err != nil {
		return nil, nil, fmt.Errorf("case %q: failed to normalize subset: %w", c.Name, err)
	}

	return actual, subset, nil
}

// Categories returns the loose coercions of c, options.CategoryDefault when none are named.
func (c *Case) Categories() (options.CategoryEnum, error) {
	if len(c.Coercions) == 0 {
		return options.CategoryDefault, nil
	}

	return options.ParseCategories(c.Coercions...)
}
