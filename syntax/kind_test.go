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

package syntax_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/asvarga/cstree2d/syntax"
)

type wideKind uint32

const (
	wideRoot wideKind = iota
	wideText
)

func (wideKind) StaticText() (string, bool) { return "", false }

type punct byte

const (
	punctComma punct = iota
	punctColon
	punctName
	punctCount
)

func (p punct) StaticText() (string, bool) {
	switch p {
	case punctComma:
		return ",", true
	case punctColon:
		return ":", true
	default:
		return "", false
	}
}

func (p punct) Valid() bool { return p < punctCount }

func (p punct) String() string {
	return [...]string{"Comma", "Colon", "Name"}[p]
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []wideKind{wideRoot, wideText, 1000, math.MaxUint32 - 3} {
		k := syntax.Wrap(s)
		assert.Equal(t, k, syntax.FromRaw[wideKind](k.Raw()))
		inner, ok := k.Inner()
		assert.True(t, ok)
		assert.Equal(t, s, inner)
		assert.Equal(t, syntax.RawKind(s), k.Raw())
	}

	for _, p := range []punct{punctComma, punctColon, punctName} {
		k := syntax.Wrap(p)
		assert.Equal(t, k, syntax.FromRaw[punct](k.Raw()))
	}

	for _, tag := range []syntax.Tag{syntax.Indent, syntax.Dedent, syntax.Newline} {
		wide := syntax.Marker[wideKind](tag)
		assert.Equal(t, tag, wide.Tag())
		assert.Equal(t, wide, syntax.FromRaw[wideKind](wide.Raw()))

		narrow := syntax.Marker[punct](tag)
		assert.Equal(t, tag, narrow.Tag())
		assert.Equal(t, narrow, syntax.FromRaw[punct](narrow.Raw()))

		// Both widths agree on the encoding of markers.
		assert.Equal(t, wide.Raw(), narrow.Raw())
	}
}

func TestEncoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, syntax.RawIndent, syntax.Marker[punct](syntax.Indent).Raw())
	assert.Equal(t, syntax.RawDedent, syntax.Marker[punct](syntax.Dedent).Raw())
	assert.Equal(t, syntax.RawNewline, syntax.Marker[punct](syntax.Newline).Raw())
	assert.Equal(t, syntax.RawKind(math.MaxUint32), syntax.RawNewline)

	assert.Equal(t, syntax.RawKind(2), syntax.Wrap(punctName).Raw())
	assert.Equal(t, syntax.Token, syntax.Kind[punct]{}.Tag())
}

func TestSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unsafe.Sizeof(wideKind(0)), unsafe.Sizeof(syntax.Kind[wideKind]{}))
	assert.Equal(t, unsafe.Sizeof(punct(0)), unsafe.Sizeof(syntax.Kind[punct]{}))
}

func TestStaticText(t *testing.T) {
	t.Parallel()

	text, ok := syntax.Wrap(punctComma).StaticText()
	assert.True(t, ok)
	assert.Equal(t, ",", text)

	_, ok = syntax.Wrap(punctName).StaticText()
	assert.False(t, ok)

	for _, tag := range []syntax.Tag{syntax.Indent, syntax.Dedent, syntax.Newline} {
		_, ok := syntax.Marker[punct](tag).StaticText()
		assert.False(t, ok, "%v", tag)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Token(Colon)", syntax.Wrap(punctColon).String())
	assert.Equal(t, "Token(1)", syntax.Wrap(wideText).String())
	assert.Equal(t, "Indent", syntax.Marker[punct](syntax.Indent).String())
	assert.Equal(t, "Dedent", syntax.Marker[punct](syntax.Dedent).String())
	assert.Equal(t, "Newline", syntax.Marker[punct](syntax.Newline).String())
	assert.Equal(t, "syntax.Newline", syntax.Newline.GoString())
	assert.Equal(t, "Tag(9)", syntax.Tag(9).String())
}

func TestContractViolations(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { syntax.Wrap(punct(253)) })
	assert.Panics(t, func() { syntax.Wrap(wideKind(math.MaxUint32 - 2)) })
	assert.Panics(t, func() { syntax.Marker[punct](syntax.Token) })

	// Out of range for a byte-sized kind.
	assert.Panics(t, func() { syntax.FromRaw[punct](300) })
	// In range, but rejected by Valid.
	assert.Panics(t, func() { syntax.FromRaw[punct](syntax.RawKind(punctCount)) })

	assert.NotPanics(t, func() { syntax.Check(punctComma, punctColon, punctName) })
	assert.Panics(t, func() { syntax.Check(punctComma, punct(255)) })
}
