package primitive

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/stretchr/testify/assert"

	"array-subset/options"
)

// Identical reports whether a and b have the same dynamic type and value.
func Identical(a, b any) bool {
	return assert.ObjectsAreEqual(a, b)
}

// Equal reports whether two leaf values are equal once the coercions in
// allowed are applied. Identical values are always equal.
func Equal(allowed options.CategoryEnum, a, b any) bool {
	if Identical(a, b) {
		return true
	}

	ka, kb := FromValue(a), FromValue(b)

	if allowed.Has(options.CategoryEnumString) {
		if ka == KindPrimitiveEnum {
			a, ka = underlyingValue(a)
		}

		if kb == KindPrimitiveEnum {
			b, kb = underlyingValue(b)
		}

		if Identical(a, b) {
			return true
		}
	}

	if ka == 0 && kb == 0 {
		return assert.ObjectsAreEqualValues(a, b)
	}

	if !Allowed(allowed, ka, kb) {
		return false
	}

	switch {
	case ka == KindNil && (kb == KindString || kb == KindBytes):
		// nil reads as the empty string, so "0" is not nil
		return textOf(b) == ""
	case kb == KindNil && (ka == KindString || ka == KindBytes):
		return textOf(a) == ""
	case ka == KindNil || kb == KindNil || ka == KindBool || kb == KindBool:
		return Truthy(a) == Truthy(b)
	case ka == KindBytes || kb == KindBytes:
		return textOf(a) == textOf(b)
	case ka == KindTime || kb == KindTime:
		return timeEqual(a, b)
	case ka == KindDuration || kb == KindDuration:
		return durationEqual(a, b)
	case ka == KindString && kb == KindString:
		// both sides must be numeric, distinct plain strings never coerce
		return IsNumeric(a.(string)) && IsNumeric(b.(string)) && NumericEqual(a, b)
	default:
		return NumericEqual(a, b)
	}
}

// Truthy reduces v to a boolean: nil, false, zero numbers, "", "0" and empty
// collections are false; everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case []byte:
		return len(t) > 0 && string(t) != "0"
	case json.Number:
		d, ok := Decimal(t)
		return !ok || !d.IsZero()
	case interface{ Len() int }:
		return t.Len() > 0
	}

	rv := reflect.ValueOf(v)
	if kind := Underlying(rv.Type()); kind == KindBool {
		return rv.Bool()
	} else if kind == KindString {
		return Truthy(rv.String())
	}

	if d, ok := Decimal(v); ok {
		return !d.IsZero()
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		// NaN, infinities and structs
		return true
	}
}

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.Bool:    reflect.TypeOf(false),
	reflect.String:  reflect.TypeOf(""),
}

// underlyingValue converts a named basic value to its unnamed basic type.
func underlyingValue(v any) (any, KindEnum) {
	rv := reflect.ValueOf(v)

	basic, ok := basicTypes[rv.Kind()]
	if !ok {
		return v, KindPrimitiveEnum
	}

	return rv.Convert(basic).Interface(), FromReflectType(basic)
}

func textOf(v any) string {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return ""
	}
}

func timeEqual(a, b any) bool {
	ta, ok := timeOf(a)
	if !ok {
		return false
	}

	tb, ok := timeOf(b)
	if !ok {
		return false
	}

	return ta.Equal(tb)
}

func timeOf(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}

func durationEqual(a, b any) bool {
	da, aok := a.(time.Duration)
	db, bok := b.(time.Duration)

	switch {
	case aok && bok:
		return da == db
	case aok:
		return durationMatches(da, b)
	case bok:
		return durationMatches(db, a)
	default:
		return false
	}
}

func durationMatches(d time.Duration, other any) bool {
	if s, ok := other.(string); ok {
		parsed, err := time.ParseDuration(s)
		return err == nil && parsed == d
	}

	return NumericEqual(int64(d), other)
}
