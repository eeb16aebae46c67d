// Package export renders normalized values as deterministic, human readable text.
package export

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"array-subset/container"
)

const indentUnit = "  "

// Exporter renders a value for failure messages and descriptions.
type Exporter interface {
	Export(v any) string
}

// Func adapts a plain function to the Exporter interface.
type Func func(v any) string

// Export calls f(v).
func (f Func) Export(v any) string {
	return f(v)
}

// SpewExporter renders containers entry by entry in key order and leaves with go-spew.
type SpewExporter struct {
	config *spew.ConfigState
}

// New returns the default exporter.
func New() *SpewExporter {
	return &SpewExporter{
		config: &spew.ConfigState{
			Indent:                  indentUnit,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			DisablePointerMethods:   true,
			SortKeys:                true,
			MaxDepth:                10,
		},
	}
}

// Export renders v. Containers look like
//
//	{
//	  "name": (int) 1
//	  0: {}
//	}
//
// with index keys bare and name keys quoted.
func (e *SpewExporter) Export(v any) string {
	var b strings.Builder

	e.write(&b, v, 0)

	return b.String()
}

func (e *SpewExporter) write(b *strings.Builder, v any, depth int) {
	c, ok := v.(*container.Container)
	if !ok {
		b.WriteString(e.leaf(v, depth))
		return
	}

	if c.Len() == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteString("{\n")

	for k, item := range c.All() {
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		b.WriteString(k.String())
		b.WriteString(": ")
		e.write(b, item, depth+1)
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')
}

func (e *SpewExporter) leaf(v any, depth int) string {
	s := strings.TrimRight(e.config.Sdump(v), "\n")
	if depth == 0 {
		return s
	}

	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(indentUnit, depth))
}
