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

// Package intern provides an interning table for token text.
//
// Trees built by this module never store token text directly; they store an
// [ID] into a [Table], which a [Resolver] later turns back into a string.
// Identical text, such as a block's repeated indentation, is stored once.
package intern

import (
	"fmt"
	"strings"
	"sync"

	"github.com/asvarga/cstree2d/internal/ext/unsafex"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always corresponds
// to the empty string.
type ID int32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into a string; to do that, you
// must call [Table.Value].
func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// GoString implements [fmt.GoStringer].
func (id ID) GoString() string {
	return id.String()
}

// Resolver looks up the text of an [ID].
type Resolver interface {
	// Value returns the string id was interned from.
	Value(id ID) string
}

// Interner is a [Resolver] that can also intern new strings.
type Interner interface {
	Resolver

	// Intern interns s, returning its ID.
	Intern(s string) ID
}

// Table is an interning table.
//
// A table can be used to convert strings into [ID]s and back again.
//
// The zero value of Table is empty and ready to use. All methods may be called
// by multiple goroutines concurrently.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

var _ Interner = (*Table)(nil)

// Intern interns the given string into this table.
func (t *Table) Intern(s string) ID {
	// Fast path for strings that have already been interned. Trees repeat the
	// same indentation over and over, so this is the common case.
	if id, ok := t.Query(s); ok {
		return id
	}
	return t.internSlow(s)
}

// InternBytes interns the given byte string into this table.
//
// bytes must not be modified until this function returns.
func (t *Table) InternBytes(bytes []byte) ID {
	// Intern clones its argument before storing it, so aliasing is safe.
	return t.Intern(unsafex.StringAlias(bytes))
}

// Query will query whether s has already been interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()

	return id, ok
}

// Value converts an [ID] back into its corresponding string.
//
// If id was created by a different [Table], the results are unspecified,
// including potentially a panic.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Len returns the number of distinct non-empty strings in this table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

func (t *Table) internSlow(s string) ID {
	// Tables outlive the buffers their strings are sliced from.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)

	// The first ID will have value 1. ID 0 is reserved for "".
	id := ID(len(t.table))
	if id < 0 {
		panic(fmt.Sprintf("cstree2d/intern: %d interning IDs exhausted", len(t.table)))
	}

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}
