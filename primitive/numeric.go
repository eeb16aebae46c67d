package primitive

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericString matches a decimal literal with optional sign, fraction and
// exponent. The exponent is bounded so rescaling stays cheap.
var numericString = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d{1,4})?$`)

// IsNumeric reports whether s is a numeric string. Leading and trailing
// whitespace is allowed.
func IsNumeric(s string) bool {
	return numericString.MatchString(strings.TrimSpace(s))
}

// Decimal returns the exact value of a number or numeric string. NaN and
// infinities have no decimal value.
func Decimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case string:
		return parseNumeric(n)
	case json.Number:
		return parseNumeric(string(n))
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return decimal.Decimal{}, false
	}

	kind := Underlying(rv.Type())

	switch {
	case kind.IsSigned():
		return decimal.NewFromInt(rv.Int()), true
	case kind.IsUnsigned():
		return decimal.NewFromUint64(rv.Uint()), true
	case kind.IsFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}

		if kind.Bits() == 32 {
			return decimal.NewFromFloat32(float32(f)), true
		}

		return decimal.NewFromFloat(f), true
	case kind == KindString:
		return parseNumeric(rv.String())
	default:
		return decimal.Decimal{}, false
	}
}

func parseNumeric(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !numericString.MatchString(s) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// floatSpecial returns f and true when v is a NaN or infinite float.
func floatSpecial(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !Underlying(rv.Type()).IsFloat() {
		return 0, false
	}

	f := rv.Float()

	return f, math.IsNaN(f) || math.IsInf(f, 0)
}

// NumericEqual compares two numbers or numeric strings by exact value.
// NaN equals nothing; infinities equal only an infinity of the same sign.
func NumericEqual(a, b any) bool {
	fa, aSpecial := floatSpecial(a)
	fb, bSpecial := floatSpecial(b)

	if aSpecial || bSpecial {
		return aSpecial && bSpecial && fa == fb
	}

	da, ok := Decimal(a)
	if !ok {
		return false
	}

	db, ok := Decimal(b)
	if !ok {
		return false
	}

	return da.Equal(db)
}
