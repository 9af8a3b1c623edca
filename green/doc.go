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

// Package green provides immutable, structurally shared syntax trees.
//
// A green tree stores only what is needed to reproduce its text: every node
// and token has a [syntax.RawKind], nodes have ordered children, and tokens
// refer to their text through an [intern.ID]. Green trees have no parent
// pointers and no offsets, so identical subtrees can be shared between
// trees, or within a single tree; see [Cache].
//
// Green trees are built with a [Builder], which accepts a well-nested stream
// of [Builder.StartNode], [Builder.Token] and [Builder.FinishNode] calls, in
// document order. Once built, a tree is frozen and may be read from any number
// of goroutines.
package green
