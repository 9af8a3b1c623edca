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

package cstree2d

import (
	"fmt"

	"github.com/asvarga/cstree2d/green"
	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/syntax"
)

// Builder builds an indentation-aware syntax tree over the caller kind S.
//
// Builder is a thin layer over [green.Builder] that wraps caller kinds in
// [syntax.Kind] and adds the marker tokens. Like [green.Builder], it panics
// on unbalanced StartNode/FinishNode calls.
type Builder[S syntax.Syntax] struct {
	inner *green.Builder
}

// NewBuilder returns a builder that owns a fresh cache and interner.
func NewBuilder[S syntax.Syntax]() *Builder[S] {
	return &Builder[S]{inner: green.NewBuilder()}
}

// NewBuilderWithCache returns a builder that shares the given cache, e.g. with
// builders of other trees.
func NewBuilderWithCache[S syntax.Syntax](cache *green.Cache) *Builder[S] {
	return &Builder[S]{inner: green.NewBuilderWithCache(cache)}
}

// NewBuilderWithInterner returns a builder that interns token text into the
// given interner.
func NewBuilderWithInterner[S syntax.Syntax](interner intern.Interner) *Builder[S] {
	return NewBuilderWithCache[S](green.NewCacheWith(interner))
}

// StartNode opens a node of the given kind.
func (b *Builder[S]) StartNode(kind S) {
	b.inner.StartNode(syntax.Wrap(kind).Raw())
}

// FinishNode closes the most recently opened node.
func (b *Builder[S]) FinishNode() {
	b.inner.FinishNode()
}

// Token appends a token of the given kind.
//
// text must not contain a newline; use [Builder.Newline] to break lines.
func (b *Builder[S]) Token(kind S, text string) {
	b.inner.Token(syntax.Wrap(kind).Raw(), text)
}

// StaticToken appends a token whose text is its kind's static text.
//
// Panics if kind has no static text.
func (b *Builder[S]) StaticToken(kind S) {
	k := syntax.Wrap(kind)
	if _, ok := k.StaticText(); !ok {
		panic(fmt.Sprintf("cstree2d: StaticToken() called with %v, which has no static text", k))
	}
	b.inner.StaticToken(k.Raw())
}

// Indent appends an Indent token, which pushes text onto the indentation
// stack. Every line that starts with content before the matching Dedent is
// prefixed with it.
func (b *Builder[S]) Indent(text string) {
	b.inner.Token(syntax.RawIndent, text)
}

// Dedent appends a Dedent token, which pops the most recent Indent.
//
// Dedents carry no text.
func (b *Builder[S]) Dedent() {
	b.inner.StaticToken(syntax.RawDedent)
}

// Dedents appends n Dedent tokens.
func (b *Builder[S]) Dedents(n int) {
	for range n {
		b.Dedent()
	}
}

// Newline appends a Newline token.
//
// Newlines carry no text; they always reconstruct to [NewlineText].
func (b *Builder[S]) Newline() {
	b.inner.StaticToken(syntax.RawNewline)
}

// Checkpoint returns the current position in the output, for use with
// [Builder.StartNodeAt].
func (b *Builder[S]) Checkpoint() green.Checkpoint {
	return b.inner.Checkpoint()
}

// StartNodeAt opens a node of the given kind that begins at cp, adopting
// everything added since then as its children.
func (b *Builder[S]) StartNodeAt(cp green.Checkpoint, kind S) {
	b.inner.StartNodeAt(cp, syntax.Wrap(kind).Raw())
}

// Finish completes the tree and returns its root along with the cache that
// holds its text; the cache's interner is the tree's resolver.
func (b *Builder[S]) Finish() (*green.Node, *green.Cache) {
	return b.inner.Finish()
}

// Tree completes the tree and returns it resolved against the builder's
// interner.
func (b *Builder[S]) Tree() *Tree[S] {
	root, cache := b.Finish()
	return NewTree[S](root, cache.Interner())
}
