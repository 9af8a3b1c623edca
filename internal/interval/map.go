// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a B-tree backed map from disjoint closed
// intervals to values.
//
// Resolved trees use it to find which token covers a given offset of the
// reconstructed text.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map is an interval map, which maps disjoint closed intervals with endpoints
// in K to values of type V.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keys are the ends of intervals, so that seeking to a point lands on
	// the least interval that ends at or after it.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry returned by [Map.Get] and [Map.Insert].
type Interval[K Endpoint, V any] struct {
	// The range for this interval, inclusive.
	Start, End K

	// The value associated with it, or nil if there is no such interval.
	Value *V
}

type entry[K Endpoint, V any] struct {
	start K
	value V
}

// Len returns the number of intervals in this map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains point, if one exists.
//
// If no such interval exists, the Value of the returned [Interval] will be
// nil.
func (m *Map[K, V]) Get(point K) Interval[K, V] {
	iter := m.tree.Iter()
	if !iter.Seek(point) || point < iter.Value().start {
		// point <= end is implied by Seek.
		return Interval[K, V]{}
	}
	return m.at(iter)
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(m.at(iter)) {
				return
			}
		}
	}
}

// Insert inserts a new interval into this map, with the given associated
// value. Both endpoints are inclusive.
//
// If [start, end] overlaps any interval already present, nothing is inserted
// and the overlapping interval with the least start is returned instead; this
// case is distinguished by overlap.Value != nil.
//
// Panics if start > end.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Write [a, b] for the new interval and [c, d] for existing ones.
	iter := m.tree.Iter()
	if !iter.Seek(start) {
		// Every interval has d < a.
		m.tree.Set(end, &entry[K, V]{start: start, value: value})
		return Interval[K, V]{}
	}

	// [c, d] is now the least interval with a <= d.
	switch {
	case end < iter.Value().start:
		// a <= b < c <= d: no overlap.
		m.tree.Set(end, &entry[K, V]{start: start, value: value})
		return Interval[K, V]{}

	case end <= iter.Key():
		// c <= b <= d: [a, b] overlaps the end of or lies within [c, d].
		return m.at(iter)
	}

	// b > d. Find the greatest interval with d <= b; if a <= d, it overlaps
	// from the left, or is contained by [a, b].
	iter.Seek(end)
	notFirst := iter.Prev()
	if notFirst && start <= iter.Key() {
		return m.at(iter)
	}
	if notFirst {
		iter.Next()
	}

	// Otherwise [a, b] overlaps the start of the least interval after it.
	return m.at(iter)
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, entry *entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if entry.start == end {
			fmt.Fprintf(s, "%#v: ", entry.start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", entry.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), entry.value)

		return true
	})
	fmt.Fprint(s, "}")
}

func (m *Map[K, V]) at(iter btree.MapIter[K, *entry[K, V]]) Interval[K, V] {
	return Interval[K, V]{
		Start: iter.Value().start,
		End:   iter.Key(),
		Value: &iter.Value().value,
	}
}
