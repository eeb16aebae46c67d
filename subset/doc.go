// Package subset decides whether a nested structure contains a subset structure.
//
// The decision is made by overlaying the subset onto a copy of the actual
// value and checking that the overlay changed nothing: every key of the
// subset must already hold an equal value in the actual structure, while keys
// absent from the subset are unconstrained.
//
// Key functions:
//   - Overlay: recursive replace of one container onto another
//   - New: builds a Matcher for a subset with strict or loose comparison
//   - Matcher.Evaluate: returns the verdict or hands a Failure to a Signaler
//   - Matches: one-shot convenience wrapper
package subset
