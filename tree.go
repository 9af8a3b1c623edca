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
	"io"
	"iter"
	"math"
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/asvarga/cstree2d/green"
	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/internal/arena"
	"github.com/asvarga/cstree2d/internal/interval"
	"github.com/asvarga/cstree2d/syntax"
)

// Tree is a green tree resolved against the interner that holds its text.
//
// Tree adds what green trees lack: parent links, sibling navigation, and the
// range of the reconstructed text that each node and token covers. All of it
// is computed once, when the tree is created; a Tree is read-only and safe
// for concurrent use.
type Tree[S syntax.Syntax] struct {
	green    *green.Node
	resolver intern.Resolver

	elems  arena.Arena[rawElem]
	root   arena.Pointer[rawElem]
	tokens interval.Map[int, arena.Pointer[rawElem]]

	textOnce sync.Once
	text     string
}

// rawElem is the resolved record for a single green element.
type rawElem struct {
	elem     green.Element
	parent   arena.Pointer[rawElem]
	index    uint32
	start    uint32
	end      uint32
	children []arena.Pointer[rawElem]
}

// NewTree resolves a green tree.
//
// Panics if the tree contains a Dedent that does not match a preceding
// Indent.
func NewTree[S syntax.Syntax](root *green.Node, r intern.Resolver) *Tree[S] {
	t := &Tree[S]{green: root, resolver: r}
	p := printer[S]{out: io.Discard, resolver: r}
	t.root = t.resolve(&p, green.NodeElement(root), 0, 0)
	return t
}

func (t *Tree[S]) resolve(p *printer[S], elem green.Element, parent arena.Pointer[rawElem], index int) arena.Pointer[rawElem] {
	ptr := t.elems.New(rawElem{elem: elem, parent: parent, index: checkedUint32(index)})

	if tok, ok := elem.Token(); ok {
		start, end, _ := p.token(tok) // io.Discard never fails.
		raw := t.elems.At(ptr)
		raw.start, raw.end = checkedUint32(start), checkedUint32(end)
		if end > start {
			t.tokens.Insert(start, end-1, ptr)
		}
		return ptr
	}

	start := p.offset
	var children []arena.Pointer[rawElem]
	if n := elem.Node(); n.Len() > 0 {
		children = make([]arena.Pointer[rawElem], 0, n.Len())
		for i, child := range n.All() {
			children = append(children, t.resolve(p, child, ptr, i))
		}
	}

	raw := t.elems.At(ptr)
	raw.children = children
	raw.start, raw.end = checkedUint32(start), checkedUint32(p.offset)
	return ptr
}

// checkedUint32 converts an offset or index for storage in a rawElem.
//
// Panics if n does not fit.
func checkedUint32(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic(fmt.Sprintf("cstree2d: offset or index %d exceeds the limits of a resolved tree", n))
	}
	return uint32(n)
}

// Root returns the root node of this tree.
func (t *Tree[S]) Root() Node[S] {
	return Node[S]{handle[S]{t, t.root}}
}

// Green returns the green tree this tree resolves.
func (t *Tree[S]) Green() *green.Node {
	return t.green
}

// Resolver returns the resolver this tree's text is looked up in.
func (t *Tree[S]) Resolver() intern.Resolver {
	return t.resolver
}

// String returns the reconstructed text of this tree.
func (t *Tree[S]) String() string {
	t.textOnce.Do(func() {
		t.text = ExtractText[S](t.green, t.resolver)
	})
	return t.text
}

// WriteTo implements [io.WriterTo].
func (t *Tree[S]) WriteTo(w io.Writer) (int64, error) {
	cw := countingWriter{w: w}
	err := WriteText[S](&cw, t.green, t.resolver)
	return cw.n, err
}

// Debug returns a dump of this tree; see [Node.Debug].
func (t *Tree[S]) Debug(recursive bool) string {
	return t.Root().Debug(recursive)
}

// TokenAt returns the token whose text covers the given offset of the
// reconstructed text.
//
// Indentation written ahead of a line's first token is not covered by any
// token.
func (t *Tree[S]) TokenAt(offset int) (Token[S], bool) {
	found := t.tokens.Get(offset)
	if found.Value == nil {
		return Token[S]{}, false
	}
	return Token[S]{handle[S]{t, *found.Value}}, true
}

// Position returns the zero-based line and column of offset in the
// reconstructed text. Columns are measured in display width, so wide
// characters count double and combining marks do not count.
//
// Panics if offset is out of range.
func (t *Tree[S]) Position(offset int) (line, column int) {
	text := t.String()
	if offset < 0 || offset > len(text) {
		panic(fmt.Sprintf("cstree2d: offset %d out of range [0, %d]", offset, len(text)))
	}

	before := text[:offset]
	line = strings.Count(before, NewlineText)
	start := strings.LastIndex(before, NewlineText) + 1
	return line, uniseg.StringWidth(before[start:])
}

// handle is a reference to a resolved element.
type handle[S syntax.Syntax] struct {
	tree *Tree[S]
	ptr  arena.Pointer[rawElem]
}

// IsZero returns whether this is the zero value, which refers to nothing.
func (h handle[S]) IsZero() bool {
	return h.tree == nil
}

// Tree returns the tree this element belongs to.
func (h handle[S]) Tree() *Tree[S] {
	return h.tree
}

// Kind returns this element's kind.
func (h handle[S]) Kind() syntax.Kind[S] {
	return syntax.FromRaw[S](h.raw().elem.Kind())
}

// Range returns the byte range of the reconstructed text this element
// covers.
func (h handle[S]) Range() (start, end int) {
	raw := h.raw()
	return int(raw.start), int(raw.end)
}

// Index returns the index of this element among its parent's children.
func (h handle[S]) Index() int {
	return int(h.raw().index)
}

// Parent returns the node containing this element, or the zero node for the
// root.
func (h handle[S]) Parent() Node[S] {
	parent := h.raw().parent
	if parent.Nil() {
		return Node[S]{}
	}
	return Node[S]{handle[S]{h.tree, parent}}
}

// Ancestors returns an iterator over the nodes containing this element,
// innermost first.
func (h handle[S]) Ancestors() iter.Seq[Node[S]] {
	return func(yield func(Node[S]) bool) {
		for n := h.Parent(); !n.IsZero(); n = n.Parent() {
			if !yield(n) {
				return
			}
		}
	}
}

// String returns the text this element produced, including any indentation
// written ahead of the first token within it.
func (h handle[S]) String() string {
	start, end := h.Range()
	return h.tree.String()[start:end]
}

func (h handle[S]) raw() *rawElem {
	return h.tree.elems.At(h.ptr)
}

func (h handle[S]) sibling(delta int, nodes bool) handle[S] {
	parent := h.raw().parent
	if parent.Nil() {
		return handle[S]{}
	}
	siblings := h.tree.elems.At(parent).children
	for i := h.Index() + delta; i >= 0 && i < len(siblings); i += delta {
		if !nodes || h.tree.elems.At(siblings[i]).elem.IsNode() {
			return handle[S]{h.tree, siblings[i]}
		}
	}
	return handle[S]{}
}

// Node is a resolved interior node.
//
// The zero value refers to no node; see [Node.IsZero].
type Node[S syntax.Syntax] struct {
	handle[S]
}

// Green returns the green node this node resolves.
func (n Node[S]) Green() *green.Node {
	return n.raw().elem.Node()
}

// ChildrenWithTokens returns an iterator over the nodes and tokens directly
// within this node, in order.
func (n Node[S]) ChildrenWithTokens() iter.Seq[Element[S]] {
	return func(yield func(Element[S]) bool) {
		for _, child := range n.raw().children {
			if !yield(Element[S]{handle[S]{n.tree, child}}) {
				return
			}
		}
	}
}

// Children returns an iterator over the nodes directly within this node, in
// order.
func (n Node[S]) Children() iter.Seq[Node[S]] {
	return func(yield func(Node[S]) bool) {
		for child := range n.ChildrenWithTokens() {
			if child.IsNode() && !yield(child.Node()) {
				return
			}
		}
	}
}

// FirstChild returns the first node directly within this node, or the zero
// node.
func (n Node[S]) FirstChild() Node[S] {
	for child := range n.Children() {
		return child
	}
	return Node[S]{}
}

// LastChild returns the last node directly within this node, or the zero
// node.
func (n Node[S]) LastChild() Node[S] {
	var last Node[S]
	for child := range n.Children() {
		last = child
	}
	return last
}

// NextSibling returns the next node with the same parent, or the zero node.
func (n Node[S]) NextSibling() Node[S] {
	return Node[S]{n.sibling(1, true)}
}

// PrevSibling returns the previous node with the same parent, or the zero
// node.
func (n Node[S]) PrevSibling() Node[S] {
	return Node[S]{n.sibling(-1, true)}
}

// Descendants returns an iterator over this node and every node within it,
// in document order.
func (n Node[S]) Descendants() iter.Seq[Node[S]] {
	return func(yield func(Node[S]) bool) {
		n.descendants(yield)
	}
}

func (n Node[S]) descendants(yield func(Node[S]) bool) bool {
	if !yield(n) {
		return false
	}
	for child := range n.Children() {
		if !child.descendants(yield) {
			return false
		}
	}
	return true
}

// Tokens returns an iterator over every token within this node, in document
// order.
func (n Node[S]) Tokens() iter.Seq[Token[S]] {
	return func(yield func(Token[S]) bool) {
		n.tokens(yield)
	}
}

func (n Node[S]) tokens(yield func(Token[S]) bool) bool {
	for child := range n.ChildrenWithTokens() {
		if child.IsNode() {
			if !child.Node().tokens(yield) {
				return false
			}
		} else if !yield(child.Token()) {
			return false
		}
	}
	return true
}

// Debug returns a dump of this node: one line per element, giving its kind
// and range, followed by the quoted text of tokens. Children are indented by
// two spaces. Unless recursive is set, only this node's line is dumped.
func (n Node[S]) Debug(recursive bool) string {
	var out strings.Builder
	n.debug(&out, 0, recursive)
	return out.String()
}

func (n Node[S]) debug(out *strings.Builder, depth int, recursive bool) {
	start, end := n.Range()
	fmt.Fprintf(out, "%s%v@%d..%d\n", strings.Repeat("  ", depth), n.Kind(), start, end)
	if !recursive {
		return
	}
	for child := range n.ChildrenWithTokens() {
		if child.IsNode() {
			child.Node().debug(out, depth+1, true)
			continue
		}
		tok := child.Token()
		start, end := tok.Range()
		fmt.Fprintf(out, "%s%v@%d..%d %q\n", strings.Repeat("  ", depth+1), tok.Kind(), start, end, tok.Text())
	}
}

// Token is a resolved token.
//
// The zero value refers to no token; see [Token.IsZero].
type Token[S syntax.Syntax] struct {
	handle[S]
}

// Green returns the green token this token resolves.
func (t Token[S]) Green() green.Token {
	tok, _ := t.raw().elem.Token()
	return tok
}

// Text returns the text this token carries.
//
// For static tokens this is their kind's static text; Dedent and Newline
// tokens carry no text.
func (t Token[S]) Text() string {
	tok := t.Green()
	if text, ok := tok.Text(t.tree.resolver); ok {
		return text
	}
	text, _ := t.Kind().StaticText()
	return text
}

// NextSiblingOrToken returns the next element with the same parent, or the
// zero element.
func (t Token[S]) NextSiblingOrToken() Element[S] {
	return Element[S]{t.sibling(1, false)}
}

// PrevSiblingOrToken returns the previous element with the same parent, or
// the zero element.
func (t Token[S]) PrevSiblingOrToken() Element[S] {
	return Element[S]{t.sibling(-1, false)}
}

// Element is either a [Node] or a [Token].
type Element[S syntax.Syntax] struct {
	handle[S]
}

// IsNode returns whether this element is a node.
func (e Element[S]) IsNode() bool {
	return !e.IsZero() && e.raw().elem.IsNode()
}

// Node converts this element into a node. Returns the zero node if it is a
// token.
func (e Element[S]) Node() Node[S] {
	if e.IsZero() || !e.IsNode() {
		return Node[S]{}
	}
	return Node[S]{e.handle}
}

// Token converts this element into a token. Returns the zero token if it is
// a node.
func (e Element[S]) Token() Token[S] {
	if e.IsZero() || e.IsNode() {
		return Token[S]{}
	}
	return Token[S]{e.handle}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += int64(n)
	return n, err
}

func (w *countingWriter) WriteString(s string) (int, error) {
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	return n, err
}
