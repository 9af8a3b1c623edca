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

package green

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/asvarga/cstree2d/internal/ext/unsafex"
	"github.com/asvarga/cstree2d/syntax"
)

// Builder builds a green tree.
//
// Calls to StartNode and FinishNode must be balanced, and the finished tree
// must have exactly one root node. Violating either is a programming error
// and panics.
//
// A Builder is a sequential accumulator: it may be handed between
// goroutines, but calls into it must not overlap.
type Builder struct {
	_ unsafex.NoCopy

	cache *Cache

	// Open nodes, innermost last. Each records where its children begin in
	// children.
	parents  []parent
	children []Element
	opened   int // Number of nodes opened so far.

	// The ID of the goroutine currently inside a method, or zero.
	busy     atomic.Int64
	finished bool
}

type parent struct {
	kind  syntax.RawKind
	first int
	id    int
}

// Checkpoint is a position in a [Builder]'s output, which a node can later
// be started at with [Builder.StartNodeAt].
//
// A checkpoint is only valid while the node that was open when it was taken
// is still the innermost open node.
type Checkpoint struct {
	children int
	node     int // ID of the innermost open node; zero at the top level.
}

// NewBuilder returns a builder with a fresh [Cache].
func NewBuilder() *Builder {
	return NewBuilderWithCache(NewCache())
}

// NewBuilderWithCache returns a builder that deduplicates nodes and interns
// text into the given cache.
func NewBuilderWithCache(cache *Cache) *Builder {
	return &Builder{cache: cache}
}

// Cache returns the cache this builder is using.
func (b *Builder) Cache() *Cache {
	return b.cache
}

// StartNode opens a new node with the given kind. Every token and node added
// until the matching [Builder.FinishNode] becomes one of its children.
func (b *Builder) StartNode(kind syntax.RawKind) {
	defer b.enter()()
	b.push(kind, len(b.children))
}

// FinishNode closes the most recently opened node.
//
// Panics if there is no open node.
func (b *Builder) FinishNode() {
	defer b.enter()()
	if len(b.parents) == 0 {
		panic("cstree2d/green: FinishNode() called without a matching StartNode()")
	}

	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	node := b.cache.node(top.kind, b.children[top.first:])
	b.children = append(b.children[:top.first], NodeElement(node))
}

// Token appends a token with the given text to the current node.
func (b *Builder) Token(kind syntax.RawKind, text string) {
	defer b.enter()()
	b.children = append(b.children, TokenElement(b.cache.token(kind, text)))
}

// StaticToken appends a token whose text is implied by its kind.
func (b *Builder) StaticToken(kind syntax.RawKind) {
	defer b.enter()()
	b.children = append(b.children, TokenElement(NewStaticToken(kind)))
}

// Checkpoint returns the current position in the output.
func (b *Builder) Checkpoint() Checkpoint {
	defer b.enter()()
	return Checkpoint{children: len(b.children), node: b.current()}
}

// StartNodeAt opens a new node that begins at a previous [Checkpoint], so
// that everything added since the checkpoint becomes its children.
//
// Panics if the checkpoint does not lie within the current node, e.g.
// because the node that was open when it was taken has since been finished.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntax.RawKind) {
	defer b.enter()()

	if cp.node != b.current() {
		panic("cstree2d/green: checkpoint was taken in a node that is no longer the current node")
	}
	first := 0
	if len(b.parents) > 0 {
		first = b.parents[len(b.parents)-1].first
	}
	if cp.children < first || cp.children > len(b.children) {
		panic(fmt.Sprintf(
			"cstree2d/green: checkpoint %d is outside the current node [%d, %d]",
			cp.children, first, len(b.children)))
	}

	b.push(kind, cp.children)
}

func (b *Builder) push(kind syntax.RawKind, first int) {
	b.opened++
	b.parents = append(b.parents, parent{kind: kind, first: first, id: b.opened})
}

// current returns the ID of the innermost open node, or zero if there is
// none.
func (b *Builder) current() int {
	if len(b.parents) == 0 {
		return 0
	}
	return b.parents[len(b.parents)-1].id
}

// Finish completes the tree and returns its root, along with the cache that
// holds its text. The builder cannot be used afterwards.
//
// Panics if any node is still open, or if the output is not a single node.
func (b *Builder) Finish() (*Node, *Cache) {
	defer b.enter()()
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("cstree2d/green: Finish() called with %d unfinished nodes", len(b.parents)))
	}
	if len(b.children) != 1 || !b.children[0].IsNode() {
		panic(fmt.Sprintf("cstree2d/green: expected a single root node, got %d elements", len(b.children)))
	}

	b.finished = true
	root := b.children[0].Node()
	b.children = nil
	return root, b.cache
}

// enter marks this builder as in use by the calling goroutine, and returns a
// function that releases it.
//
// Panics if another goroutine is currently inside the builder, or if the
// builder has been finished.
func (b *Builder) enter() func() {
	id := goid.Get()
	if !b.busy.CompareAndSwap(0, id) {
		panic(fmt.Sprintf(
			"cstree2d/green: concurrent use of Builder by goroutines %d and %d",
			b.busy.Load(), id))
	}
	if b.finished {
		b.busy.Store(0)
		panic("cstree2d/green: attempted to use a finished Builder")
	}
	return func() { b.busy.Store(0) }
}
