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
	"io"
	"strings"

	"github.com/asvarga/cstree2d/green"
	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/syntax"
)

// NewlineText is the text every Newline token reconstructs to.
const NewlineText = "\n"

// WriteText writes the text of the tree rooted at root to w, resolving token
// text through r.
//
// The only error WriteText returns is the first error returned by w, at which
// point it stops; everything written before it is correct.
//
// Panics if the tree contains a Dedent that does not match a preceding
// Indent.
func WriteText[S syntax.Syntax](w io.Writer, root *green.Node, r intern.Resolver) error {
	p := printer[S]{out: w, resolver: r}
	return p.walk(root)
}

// ExtractText returns the text of the tree rooted at root, resolving token
// text through r.
func ExtractText[S syntax.Syntax](root *green.Node, r intern.Resolver) string {
	var out strings.Builder
	_ = WriteText[S](&out, root, r) // strings.Builder never fails.
	return out.String()
}

// printer is the reconstruction state machine.
type printer[S syntax.Syntax] struct {
	out      io.Writer
	resolver intern.Resolver

	// Fragments pushed by Indent tokens that have not been popped yet.
	stack []string
	// Whether the stack must be written before the next content token.
	pending bool
	// Bytes written so far.
	offset int
}

func (p *printer[S]) walk(node *green.Node) error {
	for child := range node.Children() {
		if child.IsNode() {
			// Node boundaries do not affect indentation.
			if err := p.walk(child.Node()); err != nil {
				return err
			}
			continue
		}

		tok, _ := child.Token()
		if _, _, err := p.token(tok); err != nil {
			return err
		}
	}
	return nil
}

// token advances the state machine over tok, returning the range of the
// output it produced. For content tokens, the range excludes any
// indentation written ahead of them.
func (p *printer[S]) token(tok green.Token) (start, end int, err error) {
	kind := syntax.FromRaw[S](tok.Kind())
	switch kind.Tag() {
	case syntax.Indent:
		p.stack = append(p.stack, p.text(tok, kind))
		p.pending = true

	case syntax.Dedent:
		if len(p.stack) == 0 {
			panic("cstree2d: Dedent without a matching Indent")
		}
		p.stack = p.stack[:len(p.stack)-1]

	case syntax.Newline:
		start = p.offset
		err = p.write(NewlineText)
		p.pending = len(p.stack) > 0
		return start, p.offset, err

	default:
		if p.pending {
			p.pending = false
			for _, indent := range p.stack {
				if err := p.write(indent); err != nil {
					return p.offset, p.offset, err
				}
			}
		}
		start = p.offset
		err = p.write(p.text(tok, kind))
		return start, p.offset, err
	}

	return p.offset, p.offset, nil
}

// text returns the text of tok, falling back to its kind's static text.
func (p *printer[S]) text(tok green.Token, kind syntax.Kind[S]) string {
	if text, ok := tok.Text(p.resolver); ok {
		return text
	}
	text, _ := kind.StaticText()
	return text
}

func (p *printer[S]) write(s string) error {
	n, err := io.WriteString(p.out, s)
	p.offset += n
	return err
}
