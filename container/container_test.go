package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"array-subset/container"
)

func marshal(t *testing.T, c *container.Container) string {
	t.Helper()

	data, err := c.MarshalJSON()
	require.NoError(t, err)

	return string(data)
}

func TestContainerSetGet(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Set(container.Name("b"), nil)
	c.Set(container.Name("a"), 1)
	c.Set(container.Name("b"), 2)

	v, ok := c.Get(container.Name("b"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, []container.Key{container.Name("b"), container.Name("a")}, c.Keys())

	c.Set(container.Name("n"), nil)
	v, ok = c.Get(container.Name("n"))
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.True(t, c.Has(container.Name("n")))
	assert.False(t, c.Has(container.Name("missing")))

	c.Delete(container.Name("a"))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, `{"b":2,"n":null}`, marshal(t, c))
}

func TestContainerAppend(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Set(container.Name("x"), "x")
	c.Append("a")
	c.Set(container.Index(5), "b")
	c.Append("c")

	assert.Equal(t, []container.Key{
		container.Name("x"), container.Index(0), container.Index(5), container.Index(6),
	}, c.Keys())

	c.Delete(container.Index(6))
	c.Append("d")

	_, ok := c.Get(container.Index(7))
	assert.True(t, ok)
}

func TestContainerZeroAndNil(t *testing.T) {
	t.Parallel()

	var nilContainer *container.Container
	assert.Equal(t, 0, nilContainer.Len())
	assert.Nil(t, nilContainer.Keys())
	assert.False(t, nilContainer.Has(container.Index(0)))
	assert.Equal(t, 0, nilContainer.Clone().Len())
	nilContainer.Delete(container.Index(0))

	for range nilContainer.All() {
		t.Fatal("nil container yielded an entry")
	}

	var zero container.Container
	zero.Append(1)
	assert.Equal(t, 1, zero.Len())
	assert.Equal(t, `[1]`, marshal(t, &zero))
}

func TestContainerClone(t *testing.T) {
	t.Parallel()

	inner := container.FromList(1, 2)
	c := container.New()
	c.Set(container.Name("inner"), inner)
	c.Set(container.Name("leaf"), []int{1})

	clone := c.Clone()
	cloned, _ := clone.Get(container.Name("inner"))
	cloned.(*container.Container).Append(3)
	clone.Set(container.Name("extra"), true)

	assert.Equal(t, 2, inner.Len())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, `{"inner":[1,2,3],"leaf":[1],"extra":true}`, marshal(t, clone))

	list := container.FromList("a")
	list.Delete(container.Index(0))
	copied := list.Clone()
	copied.Append("b")
	assert.Equal(t, []container.Key{container.Index(1)}, copied.Keys())
}

func TestContainerAllStops(t *testing.T) {
	t.Parallel()

	c := container.FromList("a", "b", "c")

	var seen []any
	for _, v := range c.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []any{"a", "b"}, seen)
}

func TestContainerIsList(t *testing.T) {
	t.Parallel()

	assert.True(t, container.New().IsList())
	assert.True(t, container.FromList(1, 2).IsList())

	gap := container.New()
	gap.Set(container.Index(1), 1)
	assert.False(t, gap.IsList())

	unordered := container.New()
	unordered.Set(container.Index(1), 1)
	unordered.Set(container.Index(0), 0)
	assert.False(t, unordered.IsList())

	named := container.FromList(1)
	named.Set(container.Name("a"), 2)
	assert.False(t, named.IsList())
}

func TestContainerNative(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Set(container.Name("list"), container.FromList(1, container.FromList("x")))
	c.Set(container.Index(3), "three")

	assert.Equal(t, map[string]any{
		"list": []any{1, []any{"x"}},
		"3":    "three",
	}, c.Native())
	assert.Equal(t, []any{}, container.New().Native())
}

func TestContainerMarshalJSON(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Set(container.Name("z"), 1.5)
	c.Set(container.Name("a"), container.FromList("x", nil, true))
	c.Set(container.Index(0), container.New())

	assert.Equal(t, `{"z":1.5,"a":["x",null,true],"0":[]}`, marshal(t, c))
}
