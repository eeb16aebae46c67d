package export_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"array-subset/container"
	"array-subset/export"
)

type point struct {
	X, Y int
}

func TestExportLeaves(t *testing.T) {
	t.Parallel()

	e := export.New()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 1, "(int) 1"},
		{"float", 1.5, "(float64) 1.5"},
		{"bool", true, "(bool) true"},
		{"string", "x", `(string) (len=1) "x"`},
		{"nil", nil, "(interface {}) <nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Export(tt.in))
		})
	}
}

func TestExportContainers(t *testing.T) {
	t.Parallel()

	e := export.New()

	assert.Equal(t, "{}", e.Export(container.New()))
	assert.Equal(t, "{}", e.Export((*container.Container)(nil)))

	c := container.New()
	c.Set(container.Name("p"), point{X: 1, Y: 2})
	c.Set(container.Index(3), container.FromList("a"))

	want := "{\n" +
		"  \"p\": (export_test.point) {\n" +
		"    X: (int) 1,\n" +
		"    Y: (int) 2\n" +
		"  }\n" +
		"  3: {\n" +
		"    0: (string) (len=1) \"a\"\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, e.Export(c))
}

func TestExportKeepsOrder(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Set(container.Name("z"), 1)
	c.Set(container.Name("a"), 2)

	assert.Equal(t, "{\n  \"z\": (int) 1\n  \"a\": (int) 2\n}", export.New().Export(c))
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var e export.Exporter = export.Func(func(v any) string { return fmt.Sprint(v) })
	assert.Equal(t, "42", e.Export(42))
}

func ExampleSpewExporter_Export() {
	c := container.MustNormalize(map[string]any{
		"a": 1,
		"b": []any{"x", true},
		"c": map[string]any{},
	})

	fmt.Println(export.New().Export(c))
	// Output:
	// {
	//   "a": (int) 1
	//   "b": {
	//     0: (string) (len=1) "x"
	//     1: (bool) true
	//   }
	//   "c": {}
	// }
}
