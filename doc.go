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

// Package cstree2d builds concrete syntax trees for indentation-sensitive
// languages, and reconstructs their source text losslessly.
//
// # Text Reconstruction
//
// A tree built with a [Builder] records indentation structurally rather than
// as text. Instead of a line's leading whitespace, the tree holds an Indent
// token when a block opens, carrying the fragment that block adds to every
// line (for example "    ", or "# " for a commented-out block), and a Dedent
// token when it closes. Line breaks are Newline tokens.
//
// [WriteText] walks such a tree in document order, keeping a stack of open
// fragments. The concatenated stack is written once per line, immediately
// before the first content token on that line, so blank lines never carry
// trailing indentation and a block's fragments never need to be repeated in
// the tree.
//
// # Trees
//
// A [Builder] produces a green tree (see package green): immutable,
// deduplicated, and without parent pointers. [Tree] pairs a green tree with
// the resolver that holds its text, and adds parent links, offsets into the
// reconstructed text, and debugging output.
//
// # Kinds
//
// Callers describe their grammar with their own unsigned integer enum,
// which must satisfy [syntax.Syntax]. The marker kinds are added on top of
// it by [syntax.Kind].
package cstree2d
