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

package intern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/asvarga/cstree2d/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"    ",
		"# ",
		"\t",
		"hello",
		"very long line of text",
		"    ",
	}

	var table intern.Table
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%q/%d", s, i), func(t *testing.T) {
				t.Parallel()

				id := table.Intern(s)
				assert.Equal(t, s, table.Value(id), "id: %v", id)
				assert.Equal(t, s == "", id == 0)
			})
		}
	}
}

func TestDedup(t *testing.T) {
	t.Parallel()

	var table intern.Table
	a := table.Intern("    ")
	b := table.InternBytes([]byte("    "))
	assert.Equal(t, a, b)
	assert.Equal(t, 1, table.Len())

	id, ok := table.Query("    ")
	assert.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = table.Query("# ")
	assert.False(t, ok)

	id, ok = table.Query("")
	assert.True(t, ok)
	assert.Zero(t, id)
}

func TestConcurrent(t *testing.T) {
	t.Parallel()

	var table intern.Table
	var group errgroup.Group
	ids := make([]intern.ID, 64)
	for i := range ids {
		group.Go(func() error {
			ids[i] = table.Intern(fmt.Sprint("text", i%8))
			return nil
		})
	}
	assert.NoError(t, group.Wait())

	assert.Equal(t, 8, table.Len())
	for i, id := range ids {
		assert.Equal(t, fmt.Sprint("text", i%8), table.Value(id))
	}
}

func TestIDString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `intern.ID("")`, intern.ID(0).String())
	assert.Equal(t, "intern.ID(3)", fmt.Sprintf("%#v", intern.ID(3)))
}
