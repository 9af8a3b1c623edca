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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asvarga/cstree2d/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]
	assert.Zero(a.Len())

	p1 := a.New(5)
	p2 := p1.In(&a)
	assert.Equal(5, *a.At(p1))

	for i := range 16 {
		a.New(i + 5)
	}
	assert.Equal(19, *a.At(16))
	assert.Equal(20, *a.At(17))
	assert.Same(a.At(p1), p2)

	for i := range 32 {
		a.New(i + 21)
	}
	assert.Equal(51, *a.At(48))
	assert.Equal(52, *a.At(49))
	assert.Same(a.At(p1), p2)
	assert.Equal(49, a.Len())

	assert.Equal("[5 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19|20 21 22 23 24 25 26 27 28 29 30 31 32 33 34 35 36 37 38 39 40 41 42 43 44 45 46 47 48 49 50 51|52]", a.String())
}

func TestAll(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	var want []arena.Pointer[string]
	for range 40 {
		want = append(want, a.New("x"))
	}

	var got []arena.Pointer[string]
	for p, v := range a.All() {
		assert.Same(t, a.At(p), v)
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	a.New(1)
	assert.Panics(t, func() { a.At(0) })
	assert.Panics(t, func() { a.At(2) })
}
