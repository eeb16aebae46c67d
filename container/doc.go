// Package container provides the ordered key/value Container used to represent
// both lists and keyed maps, and the Normalizer that turns arbitrary inputs
// into containers.
//
// Key functions:
//   - Normalize: converts native slices, arrays and maps, containers,
//     ArrayCopier values, JSON and YAML documents and single-pass iterators
//     into a new Container, recursively
//   - FromJSON / FromYAML: decode documents keeping key order
//   - Dispatch: reports which normalization branch an input takes
//
// Inputs outside the accepted domain are cast permissively (a struct becomes
// its exported fields, a scalar a one-element list) unless the Normalizer is
// built with WithFailFast.
package container
