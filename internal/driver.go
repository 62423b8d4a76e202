package internal

// Select rearranges [lo, hi) so that the element ranked k within the
// caller's original array — k is a fixed absolute index, never adjusted as
// [lo, hi) narrows — ends up at index k, with every element in [lo, k) <=
// A[k] <= every element in [k, hi). It never recurses on its own frame:
// the state machine in spec.md §4.6 is expressed as tail iteration over a
// shrinking [lo, hi), so stack depth is bounded only by the pivot
// selectors' own inner recursion (O(log log n) in practice).
//
// A range that is already partitioned around k is left untouched, so a
// second call with the same k leaves the array exactly as the first left it.
func Select(less LessFunc, swap SwapFunc, cfg Config, rng *Rng, lo, hi, k int) {
	partitioned := true
	for i := lo; i < hi && partitioned; i++ {
		if (i < k && less(k, i)) || (i > k && less(i, k)) {
			partitioned = false
		}
	}
	if partitioned {
		return
	}
	for {
		n := hi - lo
		if n <= 1 {
			return
		}
		if n <= cfg.TInsertion {
			InsertionSort(less, swap, lo, hi)
			return
		}
		if n < cfg.TSample {
			piv := smallSlicePivot(less, swap, cfg, rng, lo, hi, k)
			q := HoarePartition(less, swap, lo, hi, piv)
			switch {
			case k < q:
				hi = q
			case k > q:
				lo = q + 1
			default:
				return
			}
			continue
		}

		piv, duplicateLikely := largeSlicePivot(less, swap, cfg, rng, lo, hi, k)
		if duplicateLikely {
			u, v := EqualPartition(less, swap, lo, hi, piv)
			switch {
			case k < u:
				hi = u
			case k > v:
				lo = v + 1
			default:
				return
			}
			continue
		}

		q := HoarePartition(less, swap, lo, hi, piv)
		switch {
		case k < q:
			hi = q
		case k > q:
			lo = q + 1
		default:
			return
		}
	}
}
