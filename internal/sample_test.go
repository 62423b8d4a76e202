package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleLayoutConservesMultiset(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	before := append([]int(nil), a...)
	rng := NewRng(7)
	SampleLayout(swapInts(a), rng, 0, len(a), 4)
	assert.ElementsMatch(t, before, a)
}

func TestSampleLayoutClipsToRangeLength(t *testing.T) {
	a := []int{1, 2, 3}
	before := append([]int(nil), a...)
	rng := NewRng(7)
	// Requesting a sample larger than the range must not panic or read out
	// of bounds; SampleLayout clips s to n internally.
	SampleLayout(swapInts(a), rng, 0, len(a), 10)
	assert.ElementsMatch(t, before, a)
}
