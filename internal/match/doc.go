// Package match finds near misses among container key names.
//
// Key functions:
//   - Fold: normalizes a key name for fuzzy comparison
//   - Distance: computes the edit distance between two names
//   - Suggest: picks the candidate a misspelled key most likely meant
package match
