// Package common holds the small set of generic types shared between
// the public turboselect API and the internal selection engine.
package common

// CompareFn reports whether a sorts strictly before b. Implementations must
// define a total order: irreflexive, transitive, and consistent across
// repeated calls with the same arguments.
type CompareFn[T any] func(a, b T) bool
