package primitive

import (
	"maps"
	"sync"

	"array-subset/options"
)

// ConversionPair is an ordered pair of kinds a loose comparison may bridge.
type ConversionPair struct {
	From, To KindEnum
}

var (
	conversionPairs map[options.CategoryEnum]map[ConversionPair]struct{}
	allowedSets     sync.Map // options.CategoryEnum -> map[ConversionPair]struct{}
)

func init() {
	conversionPairs = make(map[options.CategoryEnum]map[ConversionPair]struct{})

	// CategoryNumber: every number kind against every number kind
	conversionPairs[options.CategoryNumber] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsNumber() {
			continue
		}

		for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsNumber() {
				continue
			}

			conversionPairs[options.CategoryNumber][ConversionPair{fromKind, toKind}] = struct{}{}
		}
	}

	// CategoryTextNumber: text <-> number and text <-> text
	conversionPairs[options.CategoryTextNumber] = map[ConversionPair]struct{}{
		{KindString, KindString}: {},
	}
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsNumber() {
			continue
		}

		conversionPairs[options.CategoryTextNumber][ConversionPair{numberKind, KindString}] = struct{}{}
		conversionPairs[options.CategoryTextNumber][ConversionPair{KindString, numberKind}] = struct{}{}
	}

	// CategoryTruthy: nil and bool against anything, composite values included
	conversionPairs[options.CategoryTruthy] = map[ConversionPair]struct{}{}
	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		for _, side := range []KindEnum{KindNil, KindBool} {
			conversionPairs[options.CategoryTruthy][ConversionPair{side, kind}] = struct{}{}
			conversionPairs[options.CategoryTruthy][ConversionPair{kind, side}] = struct{}{}
		}
	}

	// CategoryEnumString: named basic types against basic kinds and each other
	conversionPairs[options.CategoryEnumString] = map[ConversionPair]struct{}{
		{KindPrimitiveEnum, KindPrimitiveEnum}: {},
	}
	for kind := KindEnum(1); kind <= KindString; kind++ {
		conversionPairs[options.CategoryEnumString][ConversionPair{KindPrimitiveEnum, kind}] = struct{}{}
		conversionPairs[options.CategoryEnumString][ConversionPair{kind, KindPrimitiveEnum}] = struct{}{}
	}

	conversionPairs[options.CategoryBytes] = map[ConversionPair]struct{}{
		{KindBytes, KindString}: {},
		{KindString, KindBytes}: {},
	}

	// CategoryDatetime: string(RFC3339Nano) <-> time.Time, time.Time <-> time.Time by instant
	conversionPairs[options.CategoryDatetime] = map[ConversionPair]struct{}{
		{KindString, KindTime}: {},
		{KindTime, KindString}: {},
		{KindTime, KindTime}:   {},
	}

	// CategoryDuration: string(2h45m) <-> time.Duration conversions
	conversionPairs[options.CategoryDuration] = map[ConversionPair]struct{}{
		{KindString, KindDuration}: {},
		{KindDuration, KindString}: {},
	}

	// CategoryNanoseconds: int(nanoseconds) <-> time.Duration conversions
	conversionPairs[options.CategoryNanoseconds] = map[ConversionPair]struct{}{
		{KindNumber, KindDuration}: {},
		{KindDuration, KindNumber}: {},
	}
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsInteger() {
			continue
		}

		conversionPairs[options.CategoryNanoseconds][ConversionPair{numberKind, KindDuration}] = struct{}{}
		conversionPairs[options.CategoryNanoseconds][ConversionPair{KindDuration, numberKind}] = struct{}{}
	}
}

// Allowed reports whether the categories in allowed permit comparing a value
// of kind from with a value of kind to.
func Allowed(allowed options.CategoryEnum, from, to KindEnum) bool {
	_, ok := allowedSet(allowed)[ConversionPair{from, to}]

	return ok
}

func allowedSet(allowed options.CategoryEnum) map[ConversionPair]struct{} {
	if cached, ok := allowedSets.Load(allowed); ok {
		return cached.(map[ConversionPair]struct{})
	}

	res := map[ConversionPair]struct{}{}

	for category := options.CategoryEnum(1); category&options.CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	cached, _ := allowedSets.LoadOrStore(allowed, res)

	return cached.(map[ConversionPair]struct{})
}
