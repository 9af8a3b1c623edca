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

package cstree2d_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/asvarga/cstree2d"
	"github.com/asvarga/cstree2d/intern"
)

type testSyntax uint32

const (
	root testSyntax = iota
	block
	text
	colon
)

func (k testSyntax) StaticText() (string, bool) {
	if k == colon {
		return ":", true
	}
	return "", false
}

func (k testSyntax) String() string {
	switch k {
	case root:
		return "Root"
	case block:
		return "Block"
	case text:
		return "Text"
	case colon:
		return "Colon"
	default:
		return "?"
	}
}

// extract finishes b and reconstructs its text.
func extract(b *cstree2d.Builder[testSyntax]) string {
	n, cache := b.Finish()
	return cstree2d.ExtractText[testSyntax](n, cache.Interner())
}

func TestBasicIndentation(t *testing.T) {
	t.Parallel()

	b := cstree2d.NewBuilder[testSyntax]()
	b.StartNode(root)
	b.Token(text, "line1")
	b.Newline()
	b.Indent("    ")
	b.Token(text, "indented")
	b.Newline()
	b.Token(text, "still_indented")
	b.Dedent()
	b.FinishNode()

	assert.Equal(t, "line1\n    indented\n    still_indented", extract(b))
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *cstree2d.Builder[testSyntax])
		want  string
	}{
		{
			name: "simple",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "hello")
				b.Token(text, " ")
				b.Token(text, "world")
			},
			want: "hello world",
		},
		{
			name: "newlines",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "line1")
				b.Newline()
				b.Token(text, "line2")
			},
			want: "line1\nline2",
		},
		{
			name: "indentation",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "line1")
				b.Newline()
				b.Indent("    ")
				b.Token(text, "indented")
				b.Newline()
				b.Token(text, "still_indented")
				b.Dedent()
			},
			want: "line1\n    indented\n    still_indented",
		},
		{
			name: "nested",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "start")
				b.Newline()
				b.Indent("  ")
				b.Token(text, "level1")
				b.Newline()
				b.Indent("  ")
				b.Token(text, "level2")
				b.Newline()
				b.Token(text, "still_level2")
				b.Dedent()
				b.Newline()
				b.Token(text, "back_to_level1")
				b.Dedent()
				b.Newline()
				b.Token(text, "end")
			},
			want: "start\n" +
				"  level1\n" +
				"    level2\n" +
				"    still_level2\n" +
				"  back_to_level1\n" +
				"end",
		},
		{
			name: "mixed",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "start")
				b.Newline()
				b.Indent("    ")
				b.Indent("# ")
				b.Token(text, "comment")
				b.Dedents(2)
			},
			want: "start\n    # comment",
		},
		{
			name: "blank-line",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Indent("  ")
				b.Token(text, "a")
				b.Newline()
				b.Newline()
				b.Token(text, "b")
				b.Newline()
				b.Dedent()
			},
			want: "  a\n\n  b\n",
		},
		{
			name: "trailing-newline-at-zero",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "a")
				b.Newline()
				b.Token(text, "b")
				b.Newline()
			},
			want: "a\nb\n",
		},
		{
			name: "across-nodes",
			build: func(b *cstree2d.Builder[testSyntax]) {
				b.Token(text, "if x")
				b.StaticToken(colon)
				b.Newline()
				b.StartNode(block)
				b.Indent("\t")
				b.Token(text, "y")
				b.FinishNode()
				// The block's indentation is still open here.
				b.Newline()
				b.StartNode(block)
				b.Token(text, "z")
				b.Dedent()
				b.FinishNode()
			},
			want: "if x:\n\ty\n\tz",
		},
		{
			name: "checkpoint",
			build: func(b *cstree2d.Builder[testSyntax]) {
				cp := b.Checkpoint()
				b.Token(text, "a")
				b.Newline()
				b.Indent(" ")
				b.Token(text, "b")
				b.Dedent()
				b.StartNodeAt(cp, block)
				b.FinishNode()
			},
			want: "a\n b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := cstree2d.NewBuilder[testSyntax]()
			b.StartNode(root)
			tt.build(b)
			b.FinishNode()
			assert.Equal(t, tt.want, extract(b))
		})
	}
}

func TestUnbalancedDedent(t *testing.T) {
	t.Parallel()

	b := cstree2d.NewBuilder[testSyntax]()
	b.StartNode(root)
	b.Indent("  ")
	b.Token(text, "a")
	b.Dedents(2)
	b.FinishNode()

	n, cache := b.Finish()
	assert.Panics(t, func() {
		cstree2d.ExtractText[testSyntax](n, cache.Interner())
	})
	assert.Panics(t, func() {
		cstree2d.NewTree[testSyntax](n, cache.Interner())
	})
}

func TestStaticTokenWithoutText(t *testing.T) {
	t.Parallel()

	b := cstree2d.NewBuilder[testSyntax]()
	b.StartNode(root)
	assert.Panics(t, func() { b.StaticToken(text) })
}

var errSink = errors.New("sink is full")

type limitWriter struct {
	limit int
	buf   strings.Builder
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		return 0, errSink
	}
	return w.buf.Write(p)
}

func TestWriteTextError(t *testing.T) {
	t.Parallel()

	b := cstree2d.NewBuilder[testSyntax]()
	b.StartNode(root)
	b.Token(text, "line1")
	b.Newline()
	b.Indent("    ")
	b.Token(text, "indented")
	b.Dedent()
	b.FinishNode()
	n, cache := b.Finish()

	w := &limitWriter{limit: 8}
	err := cstree2d.WriteText[testSyntax](w, n, cache.Interner())
	require.ErrorIs(t, err, errSink)
	assert.Equal(t, "line1\n", w.buf.String())

	w = &limitWriter{limit: 100}
	require.NoError(t, cstree2d.WriteText[testSyntax](w, n, cache.Interner()))
	assert.Equal(t, "line1\n    indented", w.buf.String())
}

func TestSharedInterner(t *testing.T) {
	t.Parallel()

	var table intern.Table
	for range 2 {
		b := cstree2d.NewBuilderWithInterner[testSyntax](&table)
		b.StartNode(root)
		b.Indent("    ")
		b.Token(text, "body")
		b.Dedent()
		b.FinishNode()

		n, _ := b.Finish()
		assert.Equal(t, "    body", cstree2d.ExtractText[testSyntax](n, &table))
	}
	assert.Equal(t, 2, table.Len())
}

func TestConcurrentExtract(t *testing.T) {
	t.Parallel()

	b := cstree2d.NewBuilder[testSyntax]()
	b.StartNode(root)
	for i := range 50 {
		b.Indent(strings.Repeat(" ", i%4))
		b.Token(text, "x")
		b.Newline()
	}
	b.Dedents(50)
	b.FinishNode()
	tree := b.Tree()

	want := tree.String()
	var group errgroup.Group
	for range 8 {
		group.Go(func() error {
			var out strings.Builder
			if _, err := tree.WriteTo(&out); err != nil {
				return err
			}
			assert.Equal(t, want, out.String())
			return nil
		})
	}
	require.NoError(t, group.Wait())
}
