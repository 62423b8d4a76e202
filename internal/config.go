package internal

// Config holds the construction-time constants that tune the selection
// engine. The zero value is not usable; callers should start from
// DefaultConfig and override individual fields.
type Config struct {
	// TInsertion is the range length at or below which the driver finishes
	// with an insertion sort instead of partitioning further.
	TInsertion int

	// TSample is the range length at or above which the driver switches from
	// the small-slice (median-of-medians) pivot selector to the large-slice
	// (Floyd-Rivest) selector.
	TSample int

	// GroupSize is the tuple size used by the small-slice selector's
	// recursive "k-th of n-tuples" grouping. Must be odd; 5 or 7 are the
	// values the source material tunes for.
	GroupSize int

	// Alpha scales the Floyd-Rivest sample size: s ~= Alpha * L^(2/3) * ln(L)^(1/3).
	Alpha float64

	// Beta scales the inward bias applied to the sample-relative target
	// index, shrinking the chance the chosen pivot overshoots k.
	Beta float64

	// RngSeed seeds the sample-index generator. A zero value asks the
	// caller-facing entry points to derive a seed from the target slice's
	// own backing address, so that two different slices of the same length
	// never replay the same sample sequence (see turboselect.seedRng).
	RngSeed uint64
}

// DefaultConfig returns the tuning constants recommended by spec.md §6.
func DefaultConfig() Config {
	return Config{
		TInsertion: 16,
		TSample:    10_000,
		GroupSize:  5,
		Alpha:      0.5,
		Beta:       0.5,
	}
}
