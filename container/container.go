package container

import (
	"bytes"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/goccy/go-json"
)

// slot wraps stored values: the linked hash map reports nil values as absent.
type slot struct {
	value any
}

// Container is an ordered mapping from Key to value. Values are primitives,
// nested *Container values, or opaque leaves.
//
// The zero value is an empty container ready to use. A nil *Container reads
// as empty. Containers are not safe for concurrent mutation.
type Container struct {
	entries *linkedhashmap.Map
	next    int
}

// New returns an empty container.
func New() *Container {
	return &Container{entries: linkedhashmap.New()}
}

// FromList returns a container holding values under indices 0..n-1.
func FromList(values ...any) *Container {
	c := New()
	for _, v := range values {
		c.Append(v)
	}

	return c
}

// Len returns the number of entries.
func (c *Container) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}

	return c.entries.Size()
}

// Get returns the value stored under k.
func (c *Container) Get(k Key) (any, bool) {
	if c == nil || c.entries == nil {
		return nil, false
	}

	raw, ok := c.entries.Get(k)
	if !ok {
		return nil, false
	}

	return raw.(slot).value, true
}

// Has reports whether k is present.
func (c *Container) Has(k Key) bool {
	_, ok := c.Get(k)
	return ok
}

// Set stores v under k. An existing key keeps its position; a new key is appended.
func (c *Container) Set(k Key, v any) {
	if c.entries == nil {
		c.entries = linkedhashmap.New()
	}

	c.entries.Put(k, slot{value: v})

	if idx, ok := k.Index(); ok && idx >= c.next {
		c.next = idx + 1
	}
}

// Append stores v under the index following the largest index key.
func (c *Container) Append(v any) {
	c.Set(Index(c.next), v)
}

// Delete removes k. The next append index is not rewound.
func (c *Container) Delete(k Key) {
	if c == nil || c.entries == nil {
		return
	}

	c.entries.Remove(k)
}

// Keys returns the keys in insertion order.
func (c *Container) Keys() []Key {
	if c.Len() == 0 {
		return nil
	}

	raw := c.entries.Keys()
	keys := make([]Key, len(raw))

	for i, k := range raw {
		keys[i] = k.(Key)
	}

	return keys
}

// All iterates entries in insertion order.
func (c *Container) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if c.Len() == 0 {
			return
		}

		it := c.entries.Iterator()
		for it.Next() {
			if !yield(it.Key().(Key), it.Value().(slot).value) {
				return
			}
		}
	}
}

// Clone returns a deep copy: nested containers are cloned, leaves are shared.
func (c *Container) Clone() *Container {
	out := New()
	if c == nil {
		return out
	}

	for k, v := range c.All() {
		if nested, ok := v.(*Container); ok {
			v = nested.Clone()
		}

		out.Set(k, v)
	}

	out.next = max(out.next, c.next)

	return out
}

// IsList reports whether the keys are exactly 0..n-1 in order.
func (c *Container) IsList() bool {
	i := 0
	for k := range c.All() {
		if idx, ok := k.Index(); !ok || idx != i {
			return false
		}

		i++
	}

	return true
}

// Native converts c into []any when it is a list and map[string]any otherwise.
// Nested containers are converted too; the map form loses key order.
func (c *Container) Native() any {
	if c.IsList() {
		out := make([]any, 0, c.Len())
		for _, v := range c.All() {
			out = append(out, nativeValue(v))
		}

		return out
	}

	out := make(map[string]any, c.Len())
	for k, v := range c.All() {
		out[k.Name()] = nativeValue(v)
	}

	return out
}

func nativeValue(v any) any {
	if nested, ok := v.(*Container); ok {
		return nested.Native()
	}

	return v
}

// MarshalJSON encodes lists as arrays and everything else as objects in key order.
func (c *Container) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	list := c.IsList()
	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}

	first := true

	for k, v := range c.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		if !list {
			name, err := json.Marshal(k.Name())
			if err != nil {
				return nil, err
			}

			buf.Write(name)
			buf.WriteByte(':')
		}

		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}

		buf.Write(data)
	}

	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}
