package internal

// SampleLayout moves s elements from [lo, hi) into the prefix [lo, lo+s),
// drawn at pseudo-uniform positions via a partial Fisher-Yates shuffle: for
// each destination slot i, it swaps in an element chosen uniformly from the
// remaining unswapped suffix. Only the prefix's contents are meaningful
// afterward; the rest of [lo, hi) is permuted but otherwise unconstrained
// (spec.md §4.3). No auxiliary allocation is used, matching the resource
// model in spec.md §5.
func SampleLayout(swap SwapFunc, rng *Rng, lo, hi, s int) {
	n := hi - lo
	if s > n {
		s = n
	}
	for i := 0; i < s; i++ {
		j := i + rng.Intn(n-i)
		swap(lo+i, lo+j)
	}
}
