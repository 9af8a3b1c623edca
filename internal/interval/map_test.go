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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asvarga/cstree2d/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{
			name:   "empty",
			ranges: []r{{0, 9, "foo"}},
		},
		{
			name:   "after",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}},
		},
		{
			name:   "before",
			ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}},
		},
		{
			name:   "between",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}},
		},
		{
			name:   "inside",
			ranges: []r{{0, 9, "foo"}, {1, 2, "baz"}},
			want:   "foo",
		},
		{
			name:   "same",
			ranges: []r{{0, 9, "foo"}, {0, 9, "baz"}},
			want:   "foo",
		},
		{
			name:   "left-overlap",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {9, 29, "baz"}},
			want:   "foo",
		},
		{
			name:   "right-overlap",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {20, 32, "baz"}},
			want:   "bar",
		},
		{
			name:   "contains",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 30, "baz"}},
			want:   "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			type v struct{ v string } // This aids in pretty-printing for assertions.
			m := new(interval.Map[int, v])
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, v{e.value})
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					assert.Equal(t, &v{tt.want}, overlap.Value)
				}
				t.Logf("%v", m)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var m interval.Map[uint32, string]
	m.Insert(0, 4, "hello")
	m.Insert(5, 5, "\n")
	m.Insert(10, 14, "world")
	assert.Equal(t, 3, m.Len())

	for _, tt := range []struct {
		point      uint32
		want       string
		start, end uint32
	}{
		{point: 0, want: "hello", start: 0, end: 4},
		{point: 4, want: "hello", start: 0, end: 4},
		{point: 5, want: "\n", start: 5, end: 5},
		{point: 6},
		{point: 9},
		{point: 12, want: "world", start: 10, end: 14},
		{point: 15},
	} {
		got := m.Get(tt.point)
		if tt.want == "" {
			assert.Nil(t, got.Value, "%d", tt.point)
			continue
		}
		require.NotNil(t, got.Value, "%d", tt.point)
		assert.Equal(t, tt.want, *got.Value)
		assert.Equal(t, tt.start, got.Start)
		assert.Equal(t, tt.end, got.End)
	}

	var starts []uint32
	for iv := range m.Intervals() {
		starts = append(starts, iv.Start)
	}
	assert.Equal(t, []uint32{0, 5, 10}, starts)
}
