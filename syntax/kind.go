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

package syntax

import (
	"fmt"
	"math"
)

// RawKind is the encoded form of a [Kind], as stored in a tree.
type RawKind uint32

// Encodings of the marker kinds. These are the three highest values of
// [RawKind]; every caller kind must encode to a value below RawIndent.
const (
	RawIndent  RawKind = math.MaxUint32 - 2
	RawDedent  RawKind = math.MaxUint32 - 1
	RawNewline RawKind = math.MaxUint32
)

// Syntax is the constraint on caller-defined kind enums.
//
// A caller kind is encoded as its own integer value. The three highest values
// of the caller's type are reserved for the markers, so a byte-sized kind may
// use at most 253 values.
//
// A caller kind may also define a Valid() bool method to narrow its domain
// further; decoding a value for which Valid returns false panics.
type Syntax interface {
	~uint8 | ~uint16 | ~uint32

	// StaticText returns the text every token of this kind carries, if the
	// text does not vary between occurrences.
	StaticText() (string, bool)
}

// Kind is a caller kind augmented with the [Indent], [Dedent] and [Newline]
// markers.
//
// The zero value is Token(S(0)).
type Kind[S Syntax] struct {
	// Markers are stored in the three highest values of S.
	v S
}

// Wrap wraps a caller kind.
//
// Panics if s lies in the reserved region of its type.
func Wrap[S Syntax](s S) Kind[S] {
	if s >= limit[S]() {
		panic(fmt.Sprintf("cstree2d/syntax: kind %d collides with a reserved marker kind", uint64(s)))
	}
	return Kind[S]{s}
}

// Marker returns the marker kind with the given tag.
//
// Panics if tag is [Token], since that variant requires a caller kind.
func Marker[S Syntax](tag Tag) Kind[S] {
	top := ^S(0)
	switch tag {
	case Indent:
		return Kind[S]{top - 2}
	case Dedent:
		return Kind[S]{top - 1}
	case Newline:
		return Kind[S]{top}
	default:
		panic(fmt.Sprintf("cstree2d/syntax: %#v is not a marker tag", tag))
	}
}

// FromRaw decodes a [RawKind].
//
// This is the inverse of [Kind.Raw]. Panics if raw is not one of the marker
// encodings and does not lie within the caller's domain.
func FromRaw[S Syntax](raw RawKind) Kind[S] {
	switch raw {
	case RawIndent:
		return Marker[S](Indent)
	case RawDedent:
		return Marker[S](Dedent)
	case RawNewline:
		return Marker[S](Newline)
	}

	if uint64(raw) >= uint64(limit[S]()) {
		panic(fmt.Sprintf("cstree2d/syntax: raw kind %d is out of range for %T", raw, S(0)))
	}
	s := S(raw)
	if v, ok := any(s).(interface{ Valid() bool }); ok && !v.Valid() {
		panic(fmt.Sprintf("cstree2d/syntax: raw kind %d is not a valid %T", raw, s))
	}
	return Kind[S]{s}
}

// Check panics if any of values collides with a reserved marker kind.
//
// Callers should run this once, e.g. in an init function, over every value of
// their kind enum.
func Check[S Syntax](values ...S) {
	for _, s := range values {
		_ = Wrap(s)
	}
}

// Tag returns which variant this kind is.
func (k Kind[S]) Tag() Tag {
	switch top := ^S(0); k.v {
	case top - 2:
		return Indent
	case top - 1:
		return Dedent
	case top:
		return Newline
	default:
		return Token
	}
}

// IsMarker returns whether this is one of the marker kinds.
func (k Kind[S]) IsMarker() bool {
	return k.Tag() != Token
}

// Inner returns the wrapped caller kind, if this is not a marker.
func (k Kind[S]) Inner() (S, bool) {
	if k.IsMarker() {
		return 0, false
	}
	return k.v, true
}

// Raw encodes this kind.
func (k Kind[S]) Raw() RawKind {
	switch k.Tag() {
	case Indent:
		return RawIndent
	case Dedent:
		return RawDedent
	case Newline:
		return RawNewline
	default:
		return RawKind(k.v)
	}
}

// StaticText returns the fixed text of tokens of this kind.
//
// Markers never have static text: an indent's text varies per occurrence, and
// dedents and newlines are resolved by the reconstruction algorithm itself.
func (k Kind[S]) StaticText() (string, bool) {
	if s, ok := k.Inner(); ok {
		return s.StaticText()
	}
	return "", false
}

// String implements [fmt.Stringer].
func (k Kind[S]) String() string {
	if s, ok := k.Inner(); ok {
		return fmt.Sprintf("Token(%v)", s)
	}
	return k.Tag().String()
}

// limit returns the first reserved value of S.
func limit[S Syntax]() S {
	return ^S(0) - 2
}
