package internal

import "math"

// cmpSwap swaps a and b if the element at b sorts before the element at a,
// the single compare-exchange primitive the fixed sorting networks below
// are built from.
func cmpSwap(less LessFunc, swap SwapFunc, a, b int) {
	if less(b, a) {
		swap(a, b)
	}
}

// sortNetwork5 sorts the 5 elements at [base, base+5) with a fixed
// 9-comparator network, leaving the median at base+2. The comparator
// sequence is the reference implementation's `sort::<T, F, 5>` network.
func sortNetwork5(less LessFunc, swap SwapFunc, base int) {
	cmpSwap(less, swap, base+0, base+3)
	cmpSwap(less, swap, base+1, base+4)
	cmpSwap(less, swap, base+0, base+2)
	cmpSwap(less, swap, base+1, base+3)
	cmpSwap(less, swap, base+0, base+1)
	cmpSwap(less, swap, base+2, base+4)
	cmpSwap(less, swap, base+1, base+2)
	cmpSwap(less, swap, base+3, base+4)
	cmpSwap(less, swap, base+2, base+3)
}

// sortNetwork7 sorts the 7 elements at [base, base+7) with a fixed
// 16-comparator network, leaving the median at base+3.
func sortNetwork7(less LessFunc, swap SwapFunc, base int) {
	cmpSwap(less, swap, base+0, base+6)
	cmpSwap(less, swap, base+2, base+3)
	cmpSwap(less, swap, base+4, base+5)
	cmpSwap(less, swap, base+0, base+2)
	cmpSwap(less, swap, base+1, base+4)
	cmpSwap(less, swap, base+3, base+6)
	cmpSwap(less, swap, base+0, base+1)
	cmpSwap(less, swap, base+2, base+5)
	cmpSwap(less, swap, base+3, base+4)
	cmpSwap(less, swap, base+1, base+2)
	cmpSwap(less, swap, base+4, base+6)
	cmpSwap(less, swap, base+2, base+3)
	cmpSwap(less, swap, base+4, base+5)
	cmpSwap(less, swap, base+1, base+2)
	cmpSwap(less, swap, base+3, base+4)
	cmpSwap(less, swap, base+5, base+6)
}

// sortNetwork sorts [base, base+g) ascending, using a fixed comparator
// network for the tuple sizes spec.md §4.4 names (5 and 7) and falling back
// to insertion sort for any other configured GroupSize.
func sortNetwork(less LessFunc, swap SwapFunc, base, g int) {
	switch g {
	case 5:
		sortNetwork5(less, swap, base)
	case 7:
		sortNetwork7(less, swap, base)
	default:
		InsertionSort(less, swap, base, base+g)
	}
}

// medianOfThree returns whichever of a, b, c holds the middle value.
func medianOfThree(less LessFunc, a, b, c int) int {
	if less(a, b) {
		if less(b, c) {
			return b
		}
		if less(a, c) {
			return c
		}
		return a
	}
	if less(a, c) {
		return a
	}
	if less(b, c) {
		return c
	}
	return b
}

// smallSlicePivot implements the biased median-of-medians selector from
// spec.md §4.4 ("k-th of n-tuples"): [lo, hi) is grouped into GroupSize
// tuples, each sorted with a fixed network, and the tuple medians are
// swapped into the prefix [lo, lo+numGroups). Recursively selecting the
// rank proportional to k's position among those medians, rather than
// always the plain middle, biases the returned pivot's expected rank
// toward k instead of toward the centre of the range.
//
// Collecting medians into position lo+i for the i-th group is safe without
// disturbing not-yet-processed groups: group i's own span starts at
// lo+i*GroupSize, which is always past the destination lo+i for
// GroupSize >= 2, so every swap lands inside an already-fully-consumed
// region.
func smallSlicePivot(less LessFunc, swap SwapFunc, cfg Config, rng *Rng, lo, hi, k int) int {
	n := hi - lo
	g := cfg.GroupSize
	if g < 3 {
		g = 5
	}
	numGroups := n / g
	if numGroups < 2 {
		mid := lo + n/2
		return medianOfThree(less, lo, mid, hi-1)
	}

	for i := 0; i < numGroups; i++ {
		base := lo + i*g
		sortNetwork(less, swap, base, g)
		swap(lo+i, base+g/2)
	}

	medHi := lo + numGroups
	rank := ((k - lo) * numGroups) / n
	if rank < 0 {
		rank = 0
	} else if rank >= numGroups {
		rank = numGroups - 1
	}

	Select(less, swap, cfg, rng, lo, medHi, lo+rank)
	return lo + rank
}

// sampleSize returns the classic Floyd-Rivest sample size s ~= alpha *
// n^(2/3) * ln(n)^(1/3), clipped to [1, n-1].
func sampleSize(n int, alpha float64) int {
	fn := float64(n)
	s := alpha * math.Pow(fn, 2.0/3.0) * math.Pow(math.Log(fn), 1.0/3.0)
	out := int(math.Ceil(s))
	if out < 1 {
		out = 1
	}
	if out > n-1 {
		out = n - 1
	}
	return out
}

// largeSlicePivot implements the Floyd-Rivest selector from spec.md §4.5.
// It materialises a sample in the prefix of [lo, hi), recursively selects
// within the sample to obtain a pivot whose estimated rank is biased
// toward k, and probes a second sample-relative index to guess whether the
// range is duplicate-heavy.
func largeSlicePivot(less LessFunc, swap SwapFunc, cfg Config, rng *Rng, lo, hi, k int) (pivot int, likelyDuplicates bool) {
	n := hi - lo
	s := sampleSize(n, cfg.Alpha)
	SampleLayout(swap, rng, lo, hi, s)

	rel := k - lo
	remaining := hi - 1 - k
	ks := (rel * s) / n
	bias := int(cfg.Beta * math.Sqrt(float64(s)*float64(rel)*float64(remaining)) / float64(n))
	if rel*2 <= n {
		ks -= bias
	} else {
		ks += bias
	}
	if ks < 0 {
		ks = 0
	} else if ks >= s {
		ks = s - 1
	}

	Select(less, swap, cfg, rng, lo, lo+s, lo+ks)
	pivot = lo + ks

	ks2 := ks + 1
	if ks2 >= s {
		ks2 = ks - 1
	}
	if ks2 >= 0 && ks2 < s && ks2 != ks {
		other := lo + ks2
		likelyDuplicates = !less(pivot, other) && !less(other, pivot)
	}
	return pivot, likelyDuplicates
}
