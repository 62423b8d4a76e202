// Package turboselect provides an in-place n-th element selection
// primitive: given a mutable slice and a target rank k, it rearranges the
// slice so the element that would occupy position k in sorted order sits
// at index k, every earlier element is <= it, and every later element is
// >= it. Selection is unstable — equal elements may end up reordered
// relative to each other — and, unlike sort.Slice, it makes no guarantee
// about the order of elements within the prefix or suffix regions.
//
// The engine underneath is a hybrid of Floyd-Rivest sampling selection, a
// rank-biased median-of-medians quickselect, and a three-way
// equal-partitioning fast path for duplicate-heavy inputs; see the
// internal package for the component-level design.
package turboselect

import (
	"cmp"

	"github.com/koskinev/turboselect/common"
	"github.com/koskinev/turboselect/internal"
)

func run[T any](a []T, less internal.LessFunc, swap internal.SwapFunc, k int, cfg Config) {
	checkRank(k, len(a))
	rng := seedRng(cfg, len(a), sliceAddr(a))
	internal.Select(less, swap, cfg, rng, 0, len(a), k)
}

// SelectNth partitions a around index k using the natural order of T and
// returns three views into a: the elements before k, a pointer to a[k]
// itself, and the elements after k. All three views alias a; mutating
// through them mutates a.
//
// SelectNth panics with a *PreconditionError if k is not in [0, len(a)).
func SelectNth[T cmp.Ordered](a []T, k int) (prefix []T, nth *T, suffix []T) {
	return SelectNthWithConfig(a, k, DefaultConfig())
}

// SelectNthWithConfig is SelectNth with an explicit Config instead of
// DefaultConfig.
func SelectNthWithConfig[T cmp.Ordered](a []T, k int, cfg Config) (prefix []T, nth *T, suffix []T) {
	less := func(i, j int) bool { return a[i] < a[j] }
	swap := func(i, j int) { a[i], a[j] = a[j], a[i] }
	run(a, less, swap, k, cfg)
	return a[:k], &a[k], a[k+1:]
}

// SelectNthFunc is SelectNth for callers that supply their own comparator
// instead of relying on cmp.Ordered, mirroring the teacher's
// internal.QuickSelectFunc entry point.
func SelectNthFunc[T any](a []T, k int, less common.CompareFn[T]) (prefix []T, nth *T, suffix []T) {
	return SelectNthFuncWithConfig(a, k, less, DefaultConfig())
}

// SelectNthFuncWithConfig is SelectNthFunc with an explicit Config.
func SelectNthFuncWithConfig[T any](a []T, k int, less common.CompareFn[T], cfg Config) (prefix []T, nth *T, suffix []T) {
	lessFn := func(i, j int) bool { return less(a[i], a[j]) }
	swap := func(i, j int) { a[i], a[j] = a[j], a[i] }
	run(a, lessFn, swap, k, cfg)
	return a[:k], &a[k], a[k+1:]
}

// SelectNthByKey partitions a around index k, ordering elements by the key
// keyFn extracts from them. keyFn is invoked on demand and may be called
// many times per element — this is the right choice when keyFn is cheap
// (a struct field access) but wasteful when it is not, in which case use
// SelectNthByCachedKey instead.
//
// SelectNthByKey panics with a *PreconditionError if k is not in
// [0, len(a)).
func SelectNthByKey[T any, K cmp.Ordered](a []T, k int, keyFn func(T) K) (prefix []T, nth *T, suffix []T) {
	return SelectNthByKeyWithConfig(a, k, keyFn, DefaultConfig())
}

// SelectNthByKeyWithConfig is SelectNthByKey with an explicit Config.
func SelectNthByKeyWithConfig[T any, K cmp.Ordered](a []T, k int, keyFn func(T) K, cfg Config) (prefix []T, nth *T, suffix []T) {
	less := func(i, j int) bool { return keyFn(a[i]) < keyFn(a[j]) }
	swap := func(i, j int) { a[i], a[j] = a[j], a[i] }
	run(a, less, swap, k, cfg)
	return a[:k], &a[k], a[k+1:]
}

// SelectNthByCachedKey is SelectNthByKey for expensive key functions: keyFn
// is invoked exactly once per element, up front, into a scratch buffer of
// len(a) keys that is permuted in lockstep with a and released before
// SelectNthByCachedKey returns — including when keyFn or the underlying
// comparison panics, since the scratch buffer is a local slice that a
// deferred release covers on every exit path, per spec.md §5.
//
// SelectNthByCachedKey panics with a *PreconditionError if k is not in
// [0, len(a)).
func SelectNthByCachedKey[T any, K cmp.Ordered](a []T, k int, keyFn func(T) K) (prefix []T, nth *T, suffix []T) {
	return SelectNthByCachedKeyWithConfig(a, k, keyFn, DefaultConfig())
}

// SelectNthByCachedKeyWithConfig is SelectNthByCachedKey with an explicit
// Config.
func SelectNthByCachedKeyWithConfig[T any, K cmp.Ordered](a []T, k int, keyFn func(T) K, cfg Config) (prefix []T, nth *T, suffix []T) {
	checkRank(k, len(a))

	keys := make([]K, len(a))
	defer func() { keys = nil }()
	for i := range a {
		keys[i] = keyFn(a[i])
	}

	less := func(i, j int) bool { return keys[i] < keys[j] }
	swap := func(i, j int) {
		a[i], a[j] = a[j], a[i]
		keys[i], keys[j] = keys[j], keys[i]
	}
	rng := seedRng(cfg, len(a), sliceAddr(a))
	internal.Select(less, swap, cfg, rng, 0, len(a), k)

	return a[:k], &a[k], a[k+1:]
}
