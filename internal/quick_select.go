package internal

import "cmp"

// legacySeed derives a per-call RNG seed from the call's shape rather than
// a fixed constant, so that two different QuickSelect/QuickSelectFunc calls
// don't replay the identical sample sequence against an adversarially
// ordered input (spec.md §9's "sampling randomness" note).
func legacySeed(n, lo, hi, pivot int) uint64 {
	return uint64(n)*2654435761 ^ uint64(lo+1)<<32 ^ uint64(hi+1)<<16 ^ uint64(pivot+1)
}

// QuickSelect finds the pivot-th smallest element of arr[lo:hi+1] using the
// hybrid selection engine, retained under its original name and
// inclusive-hi calling convention for callers migrating from this
// package's earlier int64-only quickselect (see thetacommon.QuickSelect).
func QuickSelect[T cmp.Ordered](arr []T, lo, hi, pivot int) T {
	less := func(i, j int) bool { return arr[i] < arr[j] }
	swap := func(i, j int) { arr[i], arr[j] = arr[j], arr[i] }
	rng := NewRng(legacySeed(len(arr), lo, hi, pivot))
	Select(less, swap, DefaultConfig(), rng, lo, hi+1, pivot)
	return arr[pivot]
}

// QuickSelectFunc is QuickSelect for callers that supply their own
// three-way comparator instead of relying on cmp.Ordered.
func QuickSelectFunc[T any](arr []T, lo, hi, pivot int, compare func(a, b T) int) T {
	less := func(i, j int) bool { return compare(arr[i], arr[j]) < 0 }
	swap := func(i, j int) { arr[i], arr[j] = arr[j], arr[i] }
	rng := NewRng(legacySeed(len(arr), lo, hi, pivot))
	Select(less, swap, DefaultConfig(), rng, lo, hi+1, pivot)
	return arr[pivot]
}
