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

package outline

import (
	"strings"

	"github.com/asvarga/cstree2d"
	"github.com/asvarga/cstree2d/syntax"
)

func init() {
	syntax.Check(Document, Block, Line, Text)
}

// StaticText implements [syntax.Syntax]. No outline kind has static text.
func (Kind) StaticText() (string, bool) {
	return "", false
}

// Valid returns whether this is one of the declared kinds.
func (v Kind) Valid() bool {
	return v <= Text
}

// Parse builds an outline tree for text.
func Parse(text string) *cstree2d.Tree[Kind] {
	b := cstree2d.NewBuilder[Kind]()
	Build(b, text)
	return b.Tree()
}

// Build appends a Document node for text to b.
//
// Each line's indentation is its leading run of ' ' and '#'. A line that
// repeats the indentation of the enclosing blocks and adds more opens one
// block per added fragment, where a fragment is a run of spaces or a '#'
// followed by spaces; a line that does not repeat it closes blocks until it
// does. Blank lines leave the blocks alone.
func Build(b *cstree2d.Builder[Kind], text string) {
	p := parser{b: b}
	b.StartNode(Document)
	for i, line := range strings.Split(text, cstree2d.NewlineText) {
		if i > 0 {
			b.Newline()
		}
		p.line(line)
	}
	for len(p.stack) > 0 {
		p.pop()
	}
	b.FinishNode()
}

type parser struct {
	b *cstree2d.Builder[Kind]

	// Fragments of the open blocks, and their concatenation.
	stack  []string
	prefix string
}

func (p *parser) line(line string) {
	if line == "" {
		return
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " #"))]
	content := line[len(indent):]

	for !strings.HasPrefix(indent, p.prefix) {
		p.pop()
	}
	rest := indent[len(p.prefix):]

	if content == "" {
		// There is nothing for new blocks to indent; whatever the open blocks
		// do not account for is kept as text. This may be empty, in which case
		// the token only serves to write the open blocks' indentation.
		p.text(rest)
		return
	}

	for rest != "" {
		i := strings.IndexByte(rest[1:], '#') + 1
		if i == 0 {
			i = len(rest)
		}
		p.push(rest[:i])
		rest = rest[i:]
	}
	p.text(content)
}

func (p *parser) push(fragment string) {
	p.b.StartNode(Block)
	p.b.Indent(fragment)
	p.stack = append(p.stack, fragment)
	p.prefix += fragment
}

func (p *parser) pop() {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.prefix = p.prefix[:len(p.prefix)-len(top)]
	p.b.Dedent()
	p.b.FinishNode()
}

func (p *parser) text(text string) {
	p.b.StartNode(Line)
	p.b.Token(Text, text)
	p.b.FinishNode()
}
