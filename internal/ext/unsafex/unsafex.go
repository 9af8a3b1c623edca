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

// package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import (
	"sync"
	"unsafe"
)

// NoCopy can be embedded in a type to make go vet's copylocks check flag
// copies of it.
type NoCopy [0]sync.Mutex

// StringAlias returns a string that aliases a byte slice, without copying.
//
// data must not be written to for the lifetime of the returned string.
func StringAlias(data []byte) string {
	return unsafe.String(unsafe.SliceData(data), len(data))
}
