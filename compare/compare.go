// Package compare decides equality of normalized values, either strictly
// (identical types and values, identical key order) or loosely (coercions
// from an options.CategoryEnum, key order ignored).
package compare

import (
	"fmt"
	"regexp"
	"strconv"

	"array-subset/container"
	"array-subset/diagnostic"
	"array-subset/internal/match"
	"array-subset/options"
	"array-subset/primitive"
)

// Comparator compares normalized values: primitives, *container.Container
// values and opaque leaves.
type Comparator struct {
	strict  bool
	allowed options.CategoryEnum
}

// Strict returns a comparator requiring identical types, values and key order.
func Strict() Comparator {
	return Comparator{strict: true}
}

// Loose returns a comparator applying the coercions in allowed and ignoring key order.
func Loose(allowed options.CategoryEnum) Comparator {
	return Comparator{allowed: allowed}
}

// IsStrict reports whether c is a strict comparator.
func (c Comparator) IsStrict() bool {
	return c.strict
}

// Equal reports whether expected and actual are equal. It stops at the first difference.
func (c Comparator) Equal(expected, actual any) bool {
	w := walker{Comparator: c}

	return w.walk("$", expected, actual)
}

// Diff reports every difference between expected and actual as an error
// diagnostic, and every loose coercion that was needed as an info diagnostic.
func (c Comparator) Diff(expected, actual any) diagnostic.Diagnostics {
	w := walker{Comparator: c, diag: &diagnostic.Diagnostics{}}
	w.walk("$", expected, actual)

	return *w.diag
}

type walker struct {
	Comparator
	// diag is nil when only the verdict is needed.
	diag *diagnostic.Diagnostics
}

func (w *walker) collecting() bool {
	return w.diag != nil
}

func (w *walker) fail(code, message, path string, expected, actual any) bool {
	if w.collecting() {
		w.diag.AddError(code, message, path, expected, actual)
	}

	return false
}

func (w *walker) walk(path string, expected, actual any) bool {
	ec, eIsContainer := expected.(*container.Container)
	ac, aIsContainer := actual.(*container.Container)

	switch {
	case eIsContainer && aIsContainer:
		return w.containers(path, ec, ac)
	case eIsContainer || aIsContainer:
		if !w.strict && w.allowed.Has(options.CategoryTruthy) && isTruthyOperand(expected, actual) &&
			primitive.Truthy(expected) == primitive.Truthy(actual) {
			w.coerced(path, expected, actual)
			return true
		}

		return w.fail(diagnostic.CodeTypeDiffers,
			fmt.Sprintf("expected %s, got %s", describe(expected), describe(actual)), path, expected, actual)
	default:
		return w.leaves(path, expected, actual)
	}
}

func (w *walker) leaves(path string, expected, actual any) bool {
	if primitive.Identical(expected, actual) {
		return true
	}

	if !w.strict && primitive.Equal(w.allowed, expected, actual) {
		w.coerced(path, expected, actual)
		return true
	}

	if fmt.Sprintf("%T", expected) != fmt.Sprintf("%T", actual) {
		return w.fail(diagnostic.CodeTypeDiffers,
			fmt.Sprintf("expected %s, got %s", describe(expected), describe(actual)), path, expected, actual)
	}

	return w.fail(diagnostic.CodeValueDiffers,
		fmt.Sprintf("expected %#v, got %#v", expected, actual), path, expected, actual)
}

func (w *walker) containers(path string, expected, actual *container.Container) bool {
	equal := true

	for k, ev := range expected.All() {
		av, ok := actual.Get(k)
		if !ok {
			equal = w.missing(path, k, ev, actual) && equal
		} else if !w.walk(childPath(path, k), ev, av) {
			equal = false
		}

		if !equal && !w.collecting() {
			return false
		}
	}

	for k, av := range actual.All() {
		if !expected.Has(k) {
			equal = w.fail(diagnostic.CodeExtraKey, "unexpected key "+k.String(), childPath(path, k), nil, av) && equal

			if !w.collecting() {
				return false
			}
		}
	}

	if equal && w.strict && !sameOrder(expected, actual) {
		return w.fail(diagnostic.CodeKeyOrder, "keys are in a different order", path, expected.Keys(), actual.Keys())
	}

	return equal
}

func (w *walker) missing(path string, k container.Key, expected any, actual *container.Container) bool {
	if !w.collecting() {
		return false
	}

	message := "key " + k.String() + " is missing"

	if !k.IsIndex() {
		names := make([]string, 0, actual.Len())
		for ak := range actual.All() {
			if !ak.IsIndex() {
				names = append(names, ak.Name())
			}
		}

		if suggestion, ok := match.Suggest(k.Name(), names); ok {
			message += fmt.Sprintf(", did you mean %q?", suggestion)
		}
	}

	return w.fail(diagnostic.CodeMissingKey, message, childPath(path, k), expected, nil)
}

func (w *walker) coerced(path string, expected, actual any) {
	if w.collecting() {
		w.diag.AddInfo(diagnostic.CodeCoerced,
			fmt.Sprintf("%s matched %s loosely", describe(expected), describe(actual)), path, expected, actual)
	}
}

func sameOrder(a, b *container.Container) bool {
	ak, bk := a.Keys(), b.Keys()
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}

	return true
}

func isTruthyOperand(a, b any) bool {
	for _, v := range []any{a, b} {
		switch v.(type) {
		case nil, bool:
			return true
		}
	}

	return false
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *container.Container:
		return fmt.Sprintf("container(%d)", t.Len())
	default:
		return fmt.Sprintf("%T(%#v)", v, v)
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// childPath appends k to path: `$.name`, `$["odd name"]` or `$[0]`.
func childPath(path string, k container.Key) string {
	if idx, ok := k.Index(); ok {
		return path + "[" + strconv.Itoa(idx) + "]"
	}

	if identifier.MatchString(k.Name()) {
		return path + "." + k.Name()
	}

	return path + "[" + strconv.Quote(k.Name()) + "]"
}
