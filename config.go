package turboselect

import (
	"unsafe"

	"github.com/koskinev/turboselect/internal"
)

// Config exposes the construction-time constants spec.md §6 lists as
// recognised configuration: the insertion-sort and sampling thresholds,
// the small-slice group size, and the Floyd-Rivest bias constants alpha
// and beta. The zero value is not usable; start from DefaultConfig.
type Config = internal.Config

// DefaultConfig returns the tuning constants spec.md §6 recommends:
// TInsertion=16, TSample=10000, GroupSize=5, Alpha=0.5, Beta=0.5.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// seedRng derives the sample-index generator's seed for one top-level call.
// When cfg.RngSeed is zero it mixes in addr, the address of the target
// slice's backing array, the way the reference implementation reseeds a
// fresh PCGRng from data.as_ptr() on every call: two different slices of the
// same length get different sample sequences even back-to-back, which a
// seed derived from length alone cannot provide (spec.md §9's "sequences
// decorrelated from the input").
func seedRng(cfg Config, n int, addr uintptr) *internal.Rng {
	seed := cfg.RngSeed
	if seed == 0 {
		seed = uint64(addr)*0x2545F4914F6CDD1D ^ (uint64(n) + 0x9e3779b97f4a7c15)
	}
	return internal.NewRng(seed)
}

// sliceAddr returns the address of a's backing array. a must be non-empty;
// callers check that with checkRank before calling this.
func sliceAddr[T any](a []T) uintptr {
	return uintptr(unsafe.Pointer(&a[0]))
}
