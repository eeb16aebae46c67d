// Package fixture loads subset matching cases from YAML files.
//
// A fixture file looks like:
//
//	version: "1"
//	cases:
//	  - name: nested merge
//	    actual: {a: {b: 1, c: 2}}
//	    subset: {a: {b: 1}}
//	    strict: true
//	    want: true
//	  - name: numeric string
//	    actual: {a: 1}
//	    subset: {a: "1"}
//	    coercions: [number, text-number]
//	    want: true
//
// The actual and subset documents are kept as YAML nodes so that key order
// survives until they are normalized into containers.
package fixture
