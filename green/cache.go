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
	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/syntax"
)

// maxCachedChildren is the largest number of children a node may have and
// still be deduplicated by a [Cache].
const maxCachedChildren = 3

// Cache deduplicates green nodes and owns the interner that token text is
// stored in.
//
// A Cache may be shared by several [Builder]s in sequence, in which case the
// trees they build share structure and text. A Cache must not be used by
// more than one builder at a time.
type Cache struct {
	interner intern.Interner
	nodes    map[nodeKey]*Node
}

type nodeKey struct {
	kind     syntax.RawKind
	n        int
	children [maxCachedChildren]Element
}

// NewCache returns a new cache with its own interning table.
func NewCache() *Cache {
	return NewCacheWith(new(intern.Table))
}

// NewCacheWith returns a new cache that interns text into the given
// interner.
func NewCacheWith(interner intern.Interner) *Cache {
	return &Cache{
		interner: interner,
		nodes:    make(map[nodeKey]*Node),
	}
}

// Interner returns the interner this cache stores token text in. It is also
// the resolver for every tree built with this cache.
func (c *Cache) Interner() intern.Interner {
	return c.interner
}

// Len returns the number of distinct nodes this cache has deduplicated.
func (c *Cache) Len() int {
	return len(c.nodes)
}

// token interns text and returns a token for it.
func (c *Cache) token(kind syntax.RawKind, text string) Token {
	return NewToken(kind, c.interner.Intern(text))
}

// node returns a node with the given kind and children, reusing an existing
// node if possible.
//
// children is copied; the caller may reuse it.
func (c *Cache) node(kind syntax.RawKind, children []Element) *Node {
	if len(children) > maxCachedChildren {
		return c.newNode(kind, children)
	}

	key := nodeKey{kind: kind, n: len(children)}
	copy(key.children[:], children)
	if n, ok := c.nodes[key]; ok {
		return n
	}

	n := c.newNode(kind, children)
	c.nodes[key] = n
	return n
}

func (c *Cache) newNode(kind syntax.RawKind, children []Element) *Node {
	n := &Node{kind: kind, children: append([]Element(nil), children...)}
	for _, child := range children {
		switch {
		case child.node != nil:
			n.textLen += child.node.textLen
		case !child.token.static:
			n.textLen += len(c.interner.Value(child.token.text))
		}
	}
	return n
}
