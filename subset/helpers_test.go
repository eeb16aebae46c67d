package subset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"array-subset/container"
)

type entry struct {
	Key   string
	Value any
}

// containerEntries lets cmp compare containers entry by entry, in order.
var containerEntries = cmp.Transformer("entries", func(c *container.Container) []entry {
	out := make([]entry, 0, c.Len())
	for k, v := range c.All() {
		out = append(out, entry{Key: k.String(), Value: v})
	}

	return out
})

func mustJSON(t *testing.T, doc string) *container.Container {
	t.Helper()

	c, err := container.FromJSON([]byte(doc))
	require.NoError(t, err)

	return c
}

func marshal(t *testing.T, c *container.Container) string {
	t.Helper()

	data, err := c.MarshalJSON()
	require.NoError(t, err)

	return string(data)
}
