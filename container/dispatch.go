package container

import (
	"encoding/json"
	"reflect"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"gopkg.in/yaml.v3"
)

// DispatcherEnum names the normalizer branch that handles an input.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherNil
	DispatcherContainer
	DispatcherCopier
	DispatcherDocument
	DispatcherIterator
	DispatcherSlice
	DispatcherMap
	DispatcherStruct
	DispatcherLeaf

	// DispatcherTotal is a constant that represents the total number of branches defined
	DispatcherTotal = int(iota)
)

// ArrayCopier is implemented by array-like types that can hand out a native
// copy of their contents (a slice, a map, or a *Container).
type ArrayCopier interface {
	ArrayCopy() any
}

// KeyedIterator is a single-pass iterator yielding key/value pairs.
type KeyedIterator interface {
	Next() bool
	Key() any
	Value() any
}

// IndexedIterator is a single-pass iterator yielding index/value pairs.
type IndexedIterator interface {
	Next() bool
	Index() int
	Value() any
}

var (
	_ KeyedIterator   = (*linkedhashmap.Iterator)(nil)
	_ KeyedIterator   = (containers.IteratorWithKey)(nil)
	_ IndexedIterator = (containers.IteratorWithIndex)(nil)
)

// Dispatch classifies input by the branch Normalize takes for it.
// Pointers are classified by what they point to; a nil pointer is DispatcherNil.
func Dispatch(input any) DispatcherEnum {
	switch input.(type) {
	case nil:
		return DispatcherNil
	case *Container, Container:
		return DispatcherContainer
	case ArrayCopier:
		return DispatcherCopier
	case json.RawMessage, *yaml.Node, yaml.Node:
		return DispatcherDocument
	case KeyedIterator, IndexedIterator:
		return DispatcherIterator
	}

	rv := reflect.ValueOf(input)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return DispatcherNil
		}

		rv = rv.Elem()
	}

	return dispatchType(rv.Type())
}

func dispatchType(t reflect.Type) DispatcherEnum {
	switch t.Kind() {
	case reflect.Func:
		if t.CanSeq2() || t.CanSeq() {
			return DispatcherIterator
		}

		return DispatcherLeaf
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return DispatcherLeaf
		}

		return DispatcherSlice
	case reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	default:
		return DispatcherLeaf
	}
}

// IsContainerLike reports whether d produces a container for nested values.
func (d DispatcherEnum) IsContainerLike() bool {
	switch d {
	case DispatcherContainer, DispatcherCopier, DispatcherDocument,
		DispatcherIterator, DispatcherSlice, DispatcherMap:
		return true
	default:
		return false
	}
}
