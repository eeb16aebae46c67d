package subset_test

import (
	"fmt"

	"array-subset/subset"
)

func ExampleMatches() {
	actual := map[string]any{
		"id":   7,
		"user": map[string]any{"name": "ann", "roles": []string{"admin", "dev"}},
	}

	ok, _ := subset.Matches(actual, map[string]any{"user": map[string]any{"name": "ann"}}, true)
	fmt.Println(ok)

	ok, _ = subset.Matches(actual, map[string]any{"id": "7"}, false)
	fmt.Println(ok)

	ok, _ = subset.Matches(actual, map[string]any{"id": "7"}, true)
	fmt.Println(ok)

	// Output:
	// true
	// true
	// false
}

func ExampleMatcher_Evaluate() {
	m, _ := subset.New(map[string]any{"status": "done"}, subset.WithStrict(true))

	_, err := m.Evaluate(map[string]any{"status": "running", "progress": 40}, "job finished", false)
	fmt.Println(err)

	// Output:
	// job finished
	// Failed asserting that an array has the subset {
	//   "status": (string) (len=4) "done"
	// }.
	// --- Expected
	// +++ Actual
	// @@ -2,3 +2,3 @@
	//    "progress": (int) 40
	// -  "status": (string) (len=4) "done"
	// +  "status": (string) (len=7) "running"
	//  }
}
