// Package thetacommon retains the module's original int64-only quickselect
// entry point for callers that predate the generic engine in the internal
// package. QuickSelect keeps its original signature and inclusive-hi
// calling convention; internally it now delegates to the same hybrid
// selection engine every other entry point in this module uses, instead of
// the separate scalar-only Hoare partition this function used to run.
package thetacommon

import "github.com/koskinev/turboselect/internal"

// QuickSelect finds the pivot-th smallest element of arr[lo:hi+1].
func QuickSelect(arr []int64, lo, hi, pivot int) int64 {
	return internal.QuickSelect(arr, lo, hi, pivot)
}
