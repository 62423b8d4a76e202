package turboselect_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koskinev/turboselect"
)

func TestSelectNthAgreesWithSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(400)
		k := rng.Intn(n)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(100)
		}
		want := append([]int(nil), a...)
		sort.Ints(want)

		prefix, nth, suffix := turboselect.SelectNth(a, k)
		assert.Equal(t, want[k], *nth)
		assert.Equal(t, want[k], a[k])
		assert.Len(t, prefix, k)
		assert.Len(t, suffix, n-k-1)
	}
}

func TestSelectNthViewsAliasBackingArray(t *testing.T) {
	a := []int{5, 3, 1, 4, 2}
	_, nth, _ := turboselect.SelectNth(a, 2)
	*nth = 999
	assert.Equal(t, 999, a[2])
}

func TestSelectNthPanicsOnOutOfRangeRank(t *testing.T) {
	a := []int{1, 2, 3}
	assert.Panics(t, func() { turboselect.SelectNth(a, 3) })
	assert.Panics(t, func() { turboselect.SelectNth(a, -1) })
}

func TestSelectNthPanicsOnEmptySlice(t *testing.T) {
	var a []int
	assert.Panics(t, func() { turboselect.SelectNth(a, 0) })
}

func TestSelectNthPanicErrorType(t *testing.T) {
	a := []int{1, 2, 3}
	defer func() {
		r := recover()
		perr, ok := r.(*turboselect.PreconditionError)
		assert.True(t, ok)
		assert.NotEmpty(t, perr.Error())
	}()
	turboselect.SelectNth(a, 10)
}

func TestSelectNthFuncCustomComparator(t *testing.T) {
	a := []int{5, 3, 1, 4, 2}
	// Reverse order comparator.
	_, nth, _ := turboselect.SelectNthFunc(a, 0, func(x, y int) bool { return x > y })
	assert.Equal(t, 5, *nth)
}

func TestSelectNthByKey(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	people := []person{
		{"a", 30}, {"b", 10}, {"c", 50}, {"d", 20}, {"e", 40},
	}
	_, nth, _ := turboselect.SelectNthByKey(people, 2, func(p person) int { return p.age })
	assert.Equal(t, 30, nth.age)
}

func TestSelectNthByCachedKeyMatchesByKey(t *testing.T) {
	type item struct{ v int }
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		n := 5 + rng.Intn(200)
		k := rng.Intn(n)
		items := make([]item, n)
		for i := range items {
			items[i] = item{v: rng.Intn(500)}
		}
		want := append([]item(nil), items...)
		sort.Slice(want, func(i, j int) bool { return want[i].v < want[j].v })

		_, nth, _ := turboselect.SelectNthByCachedKey(items, k, func(it item) int { return it.v })
		assert.Equal(t, want[k].v, nth.v)
	}
}

func TestSelectNthByCachedKeyReleasesOnPanic(t *testing.T) {
	items := []int{3, 1, 2}
	defer func() {
		recover()
	}()
	turboselect.SelectNthByCachedKey(items, 1, func(v int) int {
		if v == 1 {
			panic("boom")
		}
		return v
	})
}

func TestSelectNthWithConfigCustomTuning(t *testing.T) {
	cfg := turboselect.DefaultConfig()
	cfg.TInsertion = 4
	cfg.GroupSize = 7

	rng := rand.New(rand.NewSource(3))
	a := make([]int, 300)
	for i := range a {
		a[i] = rng.Intn(300)
	}
	want := append([]int(nil), a...)
	sort.Ints(want)

	_, nth, _ := turboselect.SelectNthWithConfig(a, 150, cfg)
	assert.Equal(t, want[150], *nth)
}

func TestSelectNthAllEqualElements(t *testing.T) {
	a := make([]int, 5000)
	for i := range a {
		a[i] = 1
	}
	_, nth, _ := turboselect.SelectNth(a, 2500)
	assert.Equal(t, 1, *nth)
}

// TestSelectNthLargeSliceDuplicateHeavy drives the large-slice equal-
// partition fast path end-to-end through the public entry point: n sits
// above TSample and only a handful of distinct values are present, so
// largeSlicePivot's duplicate heuristic should engage on nearly every call.
func TestSelectNthLargeSliceDuplicateHeavy(t *testing.T) {
	cfg := turboselect.DefaultConfig()
	cfg.TSample = 300
	n := 8000
	values := []int{10, 20, 30, 40, 50}
	rng := rand.New(rand.NewSource(4))
	a := make([]int, n)
	for i := range a {
		a[i] = values[rng.Intn(len(values))]
	}
	want := append([]int(nil), a...)
	sort.Ints(want)

	for _, k := range []int{0, n / 5, n / 2, n - 1} {
		b := append([]int(nil), a...)
		_, nth, _ := turboselect.SelectNthWithConfig(b, k, cfg)
		assert.Equal(t, want[k], *nth)
		assert.ElementsMatch(t, a, b)
	}
}

func TestSelectNthStrings(t *testing.T) {
	a := []string{"pear", "apple", "banana", "kiwi", "mango"}
	want := append([]string(nil), a...)
	sort.Strings(want)
	_, nth, _ := turboselect.SelectNth(a, 2)
	assert.Equal(t, want[2], *nth)
}
