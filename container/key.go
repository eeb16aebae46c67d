package container

import (
	"cmp"
	"strconv"
)

// Key addresses one entry of a Container: either a non-negative index or a name.
type Key struct {
	name  string
	index int
	named bool
}

// Index returns an index key. Negative indices are stored as names.
func Index(i int) Key {
	if i < 0 {
		return Name(strconv.Itoa(i))
	}

	return Key{index: i}
}

// Name returns a name key.
func Name(s string) Key {
	return Key{name: s, named: true}
}

// IsIndex reports whether k is an index key.
func (k Key) IsIndex() bool {
	return !k.named
}

// Index returns the index of k and true, or 0 and false for name keys.
func (k Key) Index() (int, bool) {
	if k.named {
		return 0, false
	}

	return k.index, true
}

// Name returns the name of k, or the decimal index for index keys.
func (k Key) Name() string {
	if k.named {
		return k.name
	}

	return strconv.Itoa(k.index)
}

// String renders index keys bare and name keys quoted.
func (k Key) String() string {
	if k.named {
		return strconv.Quote(k.name)
	}

	return strconv.Itoa(k.index)
}

// Compare orders index keys before name keys, indices numerically and names lexically.
func (k Key) Compare(other Key) int {
	switch {
	case !k.named && !other.named:
		return cmp.Compare(k.index, other.index)
	case !k.named:
		return -1
	case !other.named:
		return 1
	default:
		return cmp.Compare(k.name, other.name)
	}
}
