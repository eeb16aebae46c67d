package container

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/ccoveille/go-safecast/v2"
	"gopkg.in/yaml.v3"
)

// Normalizer converts arbitrary inputs into containers.
//
// By default inputs outside the accepted domain are cast permissively: a
// struct becomes its exported fields, any other value becomes a one-element
// list. WithFailFast turns that fallback into a TypeMismatchError.
type Normalizer struct {
	failFast bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithFailFast rejects inputs that would otherwise take the permissive fallback.
func WithFailFast() Option {
	return func(n *Normalizer) {
		n.failFast = true
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize converts input with the default, permissive normalizer.
func Normalize(input any) (*Container, error) {
	return defaultNormalizer.Normalize(input)
}

// MustNormalize is like Normalize but panics on error.
func MustNormalize(input any) *Container {
	c, err := Normalize(input)
	if err != nil {
		panic(err)
	}

	return c
}

// Normalize converts input into a new container. The input is never modified
// and no reference to a caller-owned container is kept.
func (n *Normalizer) Normalize(input any) (*Container, error) {
	w := &walker{failFast: n.failFast, path: map[visit]struct{}{}}

	return w.root(input)
}

// visit identifies a map or slice currently being descended into.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type walker struct {
	failFast bool
	path     map[visit]struct{}
}

func (w *walker) root(input any) (*Container, error) {
	d := Dispatch(input)

	switch {
	case d == DispatcherNil:
		return New(), nil
	case d.IsContainerLike():
		v, err := w.convert(input, d)
		if err != nil {
			return nil, err
		}

		if c, ok := v.(*Container); ok {
			return c, nil
		}

		// a document whose root is a scalar
		return w.fallback(v)
	default:
		return w.fallback(input)
	}
}

// value normalizes a nested value: container-like values become containers,
// everything else is kept as an opaque leaf.
func (w *walker) value(v any) (any, error) {
	d := Dispatch(v)
	if !d.IsContainerLike() {
		return v, nil
	}

	return w.convert(v, d)
}

func (w *walker) convert(input any, d DispatcherEnum) (any, error) {
	switch d {
	case DispatcherContainer:
		switch c := input.(type) {
		case *Container:
			return c.Clone(), nil
		case Container:
			return c.Clone(), nil
		}
	case DispatcherCopier:
		return w.copier(input.(ArrayCopier))
	case DispatcherDocument:
		return w.document(input)
	case DispatcherIterator:
		return w.iterator(input)
	case DispatcherSlice, DispatcherMap:
		return w.reflected(indirect(reflect.ValueOf(input)))
	}

	return nil, fmt.Errorf("unexpected dispatch %d for %T", d, input)
}

func (w *walker) copier(c ArrayCopier) (any, error) {
	copied := c.ArrayCopy()

	d := Dispatch(copied)
	switch d {
	case DispatcherNil:
		return New(), nil
	case DispatcherContainer, DispatcherSlice, DispatcherMap:
		return w.convert(copied, d)
	default:
		return w.fallback(copied)
	}
}

func (w *walker) document(input any) (any, error) {
	switch doc := input.(type) {
	case json.RawMessage:
		return w.json(doc)
	case *yaml.Node:
		if doc == nil {
			return New(), nil
		}

		return w.yaml(doc)
	case yaml.Node:
		return w.yaml(&doc)
	}

	return nil, fmt.Errorf("unexpected document type %T", input)
}

func (w *walker) iterator(input any) (*Container, error) {
	out := New()

	switch it := input.(type) {
	case KeyedIterator:
		for it.Next() {
			if err := w.set(out, keyOf(it.Key()), it.Value()); err != nil {
				return nil, err
			}
		}

		return out, nil
	case IndexedIterator:
		for it.Next() {
			if err := w.set(out, Index(it.Index()), it.Value()); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	rv := indirect(reflect.ValueOf(input))
	if rv.IsNil() {
		return out, nil
	}

	if rv.Type().CanSeq2() {
		var err error

		for k, v := range rv.Seq2() {
			if err = w.set(out, keyOf(interfaceOf(k)), interfaceOf(v)); err != nil {
				break
			}
		}

		return out, err
	}

	var err error

	for v := range rv.Seq() {
		var nv any
		if nv, err = w.value(interfaceOf(v)); err != nil {
			break
		}

		out.Append(nv)
	}

	return out, err
}

func (w *walker) set(out *Container, k Key, v any) error {
	nv, err := w.value(v)
	if err != nil {
		return err
	}

	out.Set(k, nv)

	return nil
}

type mapEntry struct {
	key   Key
	typ   string
	value reflect.Value
}

func (w *walker) reflected(rv reflect.Value) (*Container, error) {
	out := New()

	if rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			return out, nil
		}

		v := visit{ptr: rv.Pointer(), typ: rv.Type(), len: rv.Len()}
		if _, seen := w.path[v]; seen {
			return nil, fmt.Errorf("cannot normalize cyclic %s", rv.Type())
		}

		w.path[v] = struct{}{}
		defer delete(w.path, v)
	}

	if rv.Kind() != reflect.Map {
		for i := range rv.Len() {
			nv, err := w.value(interfaceOf(rv.Index(i)))
			if err != nil {
				return nil, err
			}

			out.Append(nv)
		}

		return out, nil
	}

	entries := make([]mapEntry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k := interfaceOf(iter.Key())
		entries = append(entries, mapEntry{
			key:   keyOf(k),
			typ:   fmt.Sprintf("%T", k),
			value: iter.Value(),
		})
	}

	// keys of different types may collide once converted; the type name keeps the order stable
	slices.SortFunc(entries, func(a, b mapEntry) int {
		return cmp.Or(a.key.Compare(b.key), cmp.Compare(a.typ, b.typ))
	})

	for _, e := range entries {
		if err := w.set(out, e.key, interfaceOf(e.value)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// fallback casts an input outside the accepted domain: structs become their
// exported fields, other values a single-element list.
func (w *walker) fallback(input any) (*Container, error) {
	rv := indirect(reflect.ValueOf(input))
	if !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return New(), nil
	}

	if w.failFast {
		return nil, &TypeMismatchError{Type: reflect.TypeOf(input)}
	}

	if rv.Kind() != reflect.Struct {
		return FromList(input), nil
	}

	out := New()
	t := rv.Type()

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if err := w.set(out, Name(f.Name), rv.Field(i).Interface()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// indirect follows non-nil pointers.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	return rv
}

func interfaceOf(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	if rv.Kind() == reflect.Interface && rv.IsNil() {
		return nil
	}

	return rv.Interface()
}

// keyOf converts a Go map key or iterator key into a Key.
func keyOf(k any) Key {
	if key, ok := k.(Key); ok {
		return key
	}

	rv := reflect.ValueOf(k)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if idx, err := safecast.Convert[int](i); err == nil && idx >= 0 {
			return Index(idx)
		}

		return Name(strconv.FormatInt(i, 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if idx, err := safecast.Convert[int](u); err == nil {
			return Index(idx)
		}

		return Name(strconv.FormatUint(u, 10))
	case reflect.String:
		return Name(rv.String())
	case reflect.Invalid:
		return Name("")
	default:
		return Name(fmt.Sprint(k))
	}
}
