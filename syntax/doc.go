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

// Package syntax provides the kind model for indentation-aware syntax trees.
//
// # Augmented Kinds
//
// Trees in this module label every node and token with a [RawKind], a plain
// 32-bit integer. Callers bring their own closed set of kinds (usually a
// small unsigned enum); [Kind] wraps such a set with three structural marker
// kinds that drive text reconstruction:
//
//   - [Indent] labels a token carrying an indentation fragment, such as
//     "    " or "# ", which is pushed onto the indentation stack.
//   - [Dedent] labels a textless token that pops the most recent fragment.
//   - [Newline] labels a textless token that ends a line.
//
// The markers occupy the three highest values of the caller's own integer
// type, so a [Kind] is exactly as large as the caller's kind. When a kind is
// encoded into a [RawKind], the markers map to the three highest values of
// the 32-bit space instead, which is why caller kinds must stay below
// [RawIndent].
package syntax

//go:generate go run github.com/asvarga/cstree2d/internal/enum tag.yaml
