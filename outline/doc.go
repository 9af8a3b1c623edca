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

// Package outline builds indentation-aware trees from plain text.
//
// Outline is an example caller of package cstree2d: it decides where
// indentation changes using nothing but the leading run of spaces and '#'
// characters on each line, so that indented prose and commented-out blocks
// of code ("# ") nest as blocks. Any text round-trips:
//
//	outline.Parse(s).String() == s
package outline

//go:generate go run github.com/asvarga/cstree2d/internal/enum kind.yaml
