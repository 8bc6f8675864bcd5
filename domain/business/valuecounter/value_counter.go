package valuecounter

import (
	"cmp"
	"sort"
)

// Entry is a value with the amount of times it was seen
type Entry[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// ValueCounter counts how many times each value appears in a column
// + counts: amount of appearances per value
// + order: values in the order they were first seen
// + less: order used to break ties when looking for the mode
type ValueCounter[K comparable] struct {
	counts map[K]int
	order  []K
	less   func(a, b K) bool
}

// NewValueCounter returns a counter for ordered values. Ties in Mode are won by the lowest value
func NewValueCounter[K cmp.Ordered]() *ValueCounter[K] {
	return NewValueCounterFunc[K](cmp.Less[K])
}

// NewValueCounterFunc returns a counter whose Mode ties are won by the lowest value according to less
func NewValueCounterFunc[K comparable](less func(a, b K) bool) *ValueCounter[K] {
	return &ValueCounter[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

func (vc *ValueCounter[K]) Add(value K) {
	if _, ok := vc.counts[value]; !ok {
		vc.order = append(vc.order, value)
	}
	vc.counts[value] += 1
}

// Len returns the amount of distinct values
func (vc *ValueCounter[K]) Len() int {
	return len(vc.order)
}

// Counts returns every distinct value with its count, sorted by count in descending order.
// Values with the same count keep the order in which they were first seen.
func (vc *ValueCounter[K]) Counts() []Entry[K] {
	entries := make([]Entry[K], 0, len(vc.order))
	for _, value := range vc.order {
		entries = append(entries, Entry[K]{Value: value, Count: vc.counts[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Mode returns the most frequent value. If many values share the highest count the lowest one wins.
// The boolean is false when nothing was counted.
func (vc *ValueCounter[K]) Mode() (Entry[K], bool) {
	var mode Entry[K]
	found := false
	for _, value := range vc.order {
		count := vc.counts[value]
		if !found || count > mode.Count || (count == mode.Count && vc.less(value, mode.Value)) {
			mode = Entry[K]{Value: value, Count: count}
			found = true
		}
	}
	return mode, found
}
