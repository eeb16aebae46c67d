package options

import "fmt"

// CategoryEnum is a set of cross-kind coercions permitted by loose comparison.
type CategoryEnum int

const (
	CategoryNumber      CategoryEnum = 1 << iota // int, uint, float, json.Number: compared by exact numeric value
	CategoryTextNumber                           // numeric string <-> number, numeric string <-> numeric string
	CategoryTruthy                               // nil, bool <-> anything: both sides reduced to truthiness
	CategoryEnumString                           // named basic type <-> its underlying kind (type Status string vs "on")
	CategoryBytes                                // []byte <-> string: same bytes
	CategoryDatetime                             // time.Time <-> time.Time by instant, string(RFC3339Nano) <-> time.Time
	CategoryDuration                             // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                          // int(nanoseconds) <-> time.Duration: numerical duration representation

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryDefault mirrors loose equality of dynamic languages: numbers,
	// numeric strings, truthiness and named types.
	CategoryDefault = CategoryNumber | CategoryTextNumber | CategoryTruthy | CategoryEnumString
)

// Has reports whether every category of other is in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

var categoryNames = map[string]CategoryEnum{
	"number":      CategoryNumber,
	"text-number": CategoryTextNumber,
	"truthy":      CategoryTruthy,
	"enum-string": CategoryEnumString,
	"bytes":       CategoryBytes,
	"datetime":    CategoryDatetime,
	"duration":    CategoryDuration,
	"nanoseconds": CategoryNanoseconds,
	"all":         CategoryAll,
	"none":        CategoryNone,
	"default":     CategoryDefault,
}

// ParseCategories combines categories given by name, e.g. "number" or "text-number".
func ParseCategories(names ...string) (CategoryEnum, error) {
	var c CategoryEnum

	for _, name := range names {
		cat, ok := categoryNames[name]
		if !ok {
			return CategoryNone, fmt.Errorf("unknown coercion category %q", name)
		}

		c |= cat
	}

	return c, nil
}
