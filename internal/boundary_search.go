package internal

import "github.com/koskinev/turboselect/common"

// LowerBound returns the index of the first element in the sorted range
// arr that is not ordered strictly before v, i.e. the leftmost position at
// which v could be inserted without breaking the order. It returns
// len(arr) if every element sorts before v.
//
// Adapted from the teacher's FindWithInequality binary search over a
// common.CompareFn-ordered slice, simplified from its four-way inequality
// enum (LT/LE/GE/GT) down to the two bounds driver_test.go's sorted-oracle
// property test uses to check duplicate-run boundaries.
func LowerBound[T any](arr []T, v T, less common.CompareFn[T]) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(arr[mid], v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the index of the first element in the sorted range
// arr that sorts strictly after v, i.e. one past the rightmost run of
// elements equal to v. It returns len(arr) if no element sorts after v.
func UpperBound[T any](arr []T, v T, less common.CompareFn[T]) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(v, arr[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
