package internal

// InsertionSort sorts the range [lo, hi) in place using repeated
// shift-insert. It is the driver's finalisation step for ranges at or
// below Config.TInsertion: branch-predictable, no auxiliary memory, and
// fast for the tiny ranges it is restricted to (spec.md §4.7).
func InsertionSort(less LessFunc, swap SwapFunc, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}
