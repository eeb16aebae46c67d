package container_test

import (
	"errors"
	"iter"
	"math"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"array-subset/container"
)

type account struct {
	ID     int
	Name   string
	Tags   []string
	secret string
}

type copier struct {
	data any
}

func (c copier) ArrayCopy() any {
	return c.data
}

func orderedSeq2() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		_ = yield("b", 1) && yield("a", 2) && yield("b", 3)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, `[]`},
		{"nil pointer", (*account)(nil), `[]`},
		{"nil map", map[string]int(nil), `[]`},
		{"slice", []int{1, 2}, `[1,2]`},
		{"array", [2]string{"a", "b"}, `["a","b"]`},
		{"pointer to slice", &[]any{1, "x"}, `[1,"x"]`},
		{"map sorted by key", map[string]int{"b": 1, "a": 2}, `{"a":2,"b":1}`},
		{"int keys", map[int]string{2: "x", 0: "y"}, `{"0":"y","2":"x"}`},
		{"int keys form a list", map[uint8]string{1: "b", 0: "a"}, `["a","b"]`},
		{"negative int keys are names", map[int]int{-1: 1, 0: 2}, `{"0":2,"-1":1}`},
		{"overflowing uint keys are names", map[uint64]string{math.MaxUint64: "x", 1: "y"}, `{"1":"y","18446744073709551615":"x"}`},
		{"mixed keys", map[any]any{"1": "s", 1: "i"}, `{"1":"i","1":"s"}`},
		{"nested", map[string]any{"a": []any{map[string]int{"x": 1}}}, `{"a":[{"x":1}]}`},
		{"struct fields", account{ID: 1, Name: "ann", Tags: []string{"x"}, secret: "s"}, `{"ID":1,"Name":"ann","Tags":["x"]}`},
		{"pointer to struct", &account{ID: 2}, `{"ID":2,"Name":"","Tags":[]}`},
		{"scalar", 5, `[5]`},
		{"string", "x", `["x"]`},
		{"copier map", copier{map[string]int{"k": 1}}, `{"k":1}`},
		{"copier slice", copier{[]string{"a"}}, `["a"]`},
		{"copier nil", copier{nil}, `[]`},
		{"copier scalar", copier{true}, `[true]`},
		{"seq2", orderedSeq2(), `{"b":3,"a":2}`},
		{"seq", slices.Values([]string{"x", "y"}), `["x","y"]`},
		{"container", container.FromList(1), `[1]`},
		{"container value", *container.FromList(2), `[2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := container.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, marshal(t, c))
		})
	}
}

func TestNormalizeLeaves(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	nested := &account{ID: 1}

	c, err := container.Normalize([]any{when, nested, []byte("raw"), account{ID: 3}, 1.5})
	require.NoError(t, err)

	leaves := make([]any, 0, c.Len())
	for _, v := range c.All() {
		leaves = append(leaves, v)
	}

	assert.Equal(t, []any{when, nested, []byte("raw"), account{ID: 3}, 1.5}, leaves)
	assert.Same(t, nested, leaves[1])

	raw, err := container.Normalize([]byte("raw"))
	require.NoError(t, err)

	v, ok := raw.Get(container.Index(0))
	require.True(t, ok)
	assert.Equal(t, []byte("raw"), v)
}

func TestNormalizeIterators(t *testing.T) {
	t.Parallel()

	lhm := linkedhashmap.New()
	lhm.Put("z", 1)
	lhm.Put("a", []int{2})
	lhm.Put(7, "seven")
	keyed := lhm.Iterator()

	c, err := container.Normalize(&keyed)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[2],"7":"seven"}`, marshal(t, c))

	again, err := container.Normalize(&keyed)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Len())

	list := arraylist.New("a", "b", "c")
	indexed := list.Iterator()
	require.True(t, indexed.Next())

	c, err = container.Normalize(&indexed)
	require.NoError(t, err)
	assert.Equal(t, `{"1":"b","2":"c"}`, marshal(t, c))

	seq := func(yield func(int, any) bool) {
		for i, v := range []any{"x", map[string]int{"k": 1}} {
			if !yield(i, v) {
				return
			}
		}
	}

	c, err = container.Normalize(iter.Seq2[int, any](seq))
	require.NoError(t, err)
	assert.Equal(t, `["x",{"k":1}]`, marshal(t, c))

	var nilSeq iter.Seq[int]
	c, err = container.Normalize(nilSeq)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestNormalizeDoesNotAlias(t *testing.T) {
	t.Parallel()

	input := map[string]any{"list": []any{1, 2}, "map": map[string]any{"k": "v"}}

	c, err := container.Normalize(input)
	require.NoError(t, err)

	c.Set(container.Name("new"), 1)
	list, _ := c.Get(container.Name("list"))
	list.(*container.Container).Append(3)

	assert.Equal(t, map[string]any{"list": []any{1, 2}, "map": map[string]any{"k": "v"}}, input)

	source := container.FromList(container.FromList(1))
	copied, err := container.Normalize(source)
	require.NoError(t, err)

	inner, _ := copied.Get(container.Index(0))
	inner.(*container.Container).Append(2)
	assert.Equal(t, `[[1]]`, marshal(t, source))
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{
		map[string]any{"b": []any{1, map[int]string{3: "x"}}, "a": nil},
		account{ID: 1, Tags: []string{"t"}},
		orderedSeq2(),
		42,
	}

	for _, input := range inputs {
		once, err := container.Normalize(input)
		require.NoError(t, err)

		twice, err := container.Normalize(once)
		require.NoError(t, err)

		assert.Equal(t, marshal(t, once), marshal(t, twice))
	}
}

func TestNormalizeCycles(t *testing.T) {
	t.Parallel()

	m := map[string]any{}
	m["self"] = m

	_, err := container.Normalize(m)
	assert.ErrorContains(t, err, "cyclic")

	s := make([]any, 1)
	s[0] = s

	_, err = container.Normalize(s)
	assert.ErrorContains(t, err, "cyclic")

	shared := []int{1}
	c, err := container.Normalize([]any{shared, shared})
	require.NoError(t, err)
	assert.Equal(t, `[[1],[1]]`, marshal(t, c))
}

func TestNormalizeFailFast(t *testing.T) {
	t.Parallel()

	n := container.NewNormalizer(container.WithFailFast())

	for _, input := range []any{42, "x", account{}, &account{}, []byte("raw"), copier{1}} {
		_, err := n.Normalize(input)
		require.ErrorIs(t, err, container.ErrTypeMismatch)

		var mismatch *container.TypeMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.NotNil(t, mismatch.Type)
	}

	_, err := n.Normalize(account{})
	assert.EqualError(t, err, "cannot normalize container_test.account into a container")

	var mismatch *container.TypeMismatchError
	_, err = n.Normalize(copier{1})
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, reflect.TypeOf(0), mismatch.Type)

	c, err := n.Normalize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	c, err = n.Normalize(map[string]any{"leaf": account{}})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestMustNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, container.MustNormalize([]int{1, 2}).Len())

	m := map[string]any{}
	m["self"] = m

	assert.Panics(t, func() { container.MustNormalize(m) })
}
