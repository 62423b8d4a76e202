package internal

// LessFunc reports whether the element at index i sorts strictly before the
// element at index j. Every engine primitive in this package is expressed
// purely in terms of LessFunc and SwapFunc so that it never has to know the
// concrete element type — the same closure-based idiom the standard
// library's sort.Slice and the teacher's internal.QuickSelectFunc use.
type LessFunc func(i, j int) bool

// SwapFunc exchanges the elements at indices i and j.
type SwapFunc func(i, j int)

// HoarePartition rearranges the range [lo, hi) around the value originally
// at index piv, using the classic two-cursor Hoare scan. It returns q, the
// final resting index of that value, with A[lo:q] <= A[q] <= A[q+1:hi]
// (spec.md §4.1). The caller must ensure hi-lo >= 2.
func HoarePartition(less LessFunc, swap SwapFunc, lo, hi, piv int) int {
	swap(piv, lo)
	i, j := lo+1, hi-1
	for {
		for i <= j && less(i, lo) {
			i++
		}
		for j >= i && less(lo, j) {
			j--
		}
		if i >= j {
			break
		}
		swap(i, j)
		i++
		j--
	}
	swap(lo, j)
	return j
}

// EqualPartition rearranges the range [lo, hi) into three parts around the
// value originally at index piv: less-than, equal-to, and greater-than. It
// returns the inclusive bounds [u, v] of the equal-to region (spec.md §4.2).
//
// The scan keeps the invariant that A[lt] always holds a value equal to the
// pivot: elements found equal are left where they are (the region [lt, i)
// is exactly the accumulated equal run), so lt itself never needs a
// separate witness index the way a captured-by-value pivot would in a
// language that isn't comparing purely by index.
func EqualPartition(less LessFunc, swap SwapFunc, lo, hi, piv int) (u, v int) {
	swap(piv, lo)
	lt, gt := lo, hi-1
	i := lo
	for i <= gt {
		switch {
		case less(i, lt):
			swap(lt, i)
			lt++
			i++
		case less(lt, i):
			swap(i, gt)
			gt--
		default:
			i++
		}
	}
	return lt, gt
}
