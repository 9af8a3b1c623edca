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
	"iter"

	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/syntax"
)

// Node is an interior node of a green tree.
//
// Nodes are immutable once built, and may be shared by several parents.
type Node struct {
	kind     syntax.RawKind
	children []Element
	textLen  int
}

// Kind returns this node's kind.
func (n *Node) Kind() syntax.RawKind {
	return n.kind
}

// Len returns the number of children of this node.
func (n *Node) Len() int {
	return len(n.children)
}

// TextLen returns the total length of the text of the non-static tokens
// within this node.
//
// This is not the length of the reconstructed text, which also includes
// repeated indentation, newlines and static text.
func (n *Node) TextLen() int {
	return n.textLen
}

// At returns the idx-th child of this node.
//
// Panics if idx is out of bounds.
func (n *Node) At(idx int) Element {
	return n.children[idx]
}

// Children returns an iterator over the children of this node, in order.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, child := range n.children {
			if !yield(child) {
				return
			}
		}
	}
}

// All returns an iterator over the children of this node and their indices.
func (n *Node) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, child := range n.children {
			if !yield(i, child) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (n *Node) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, "Node(%d)[", n.kind)
	for i, child := range n.children {
		if i > 0 {
			fmt.Fprint(s, " ")
		}
		child.Format(s, verb)
	}
	fmt.Fprint(s, "]")
}

// Token is a leaf of a green tree.
//
// A token either refers to interned text, or is static, in which case its
// text is implied by its kind and is not stored at all.
type Token struct {
	kind   syntax.RawKind
	text   intern.ID
	static bool
}

// NewToken returns a token with the given interned text.
func NewToken(kind syntax.RawKind, text intern.ID) Token {
	return Token{kind: kind, text: text}
}

// NewStaticToken returns a token whose text is implied by its kind.
func NewStaticToken(kind syntax.RawKind) Token {
	return Token{kind: kind, static: true}
}

// Kind returns this token's kind.
func (t Token) Kind() syntax.RawKind {
	return t.kind
}

// TextID returns the interned text of this token. Static tokens return
// zero.
func (t Token) TextID() intern.ID {
	return t.text
}

// IsStatic returns whether this token's text is implied by its kind.
func (t Token) IsStatic() bool {
	return t.static
}

// Text looks up this token's text.
//
// Returns false for static tokens, whose text must be recovered from their
// kind instead.
func (t Token) Text(r intern.Resolver) (string, bool) {
	if t.static {
		return "", false
	}
	return r.Value(t.text), true
}

// Element is either a [*Node] or a [Token].
//
// The zero Element is a token of raw kind zero with empty text.
type Element struct {
	node  *Node
	token Token
}

// NodeElement wraps a node.
func NodeElement(n *Node) Element {
	return Element{node: n}
}

// TokenElement wraps a token.
func TokenElement(t Token) Element {
	return Element{token: t}
}

// IsNode returns whether this element is a node.
func (e Element) IsNode() bool {
	return e.node != nil
}

// Node returns this element as a node, or nil if it is a token.
func (e Element) Node() *Node {
	return e.node
}

// Token returns this element as a token, if it is one.
func (e Element) Token() (Token, bool) {
	return e.token, e.node == nil
}

// Kind returns the kind of this element.
func (e Element) Kind() syntax.RawKind {
	if e.node != nil {
		return e.node.kind
	}
	return e.token.kind
}

// Format implements [fmt.Formatter].
func (e Element) Format(s fmt.State, verb rune) {
	switch {
	case e.node != nil:
		e.node.Format(s, verb)
	case e.token.static:
		fmt.Fprintf(s, "Static(%d)", e.token.kind)
	default:
		fmt.Fprintf(s, "Token(%d, %v)", e.token.kind, e.token.text)
	}
}
