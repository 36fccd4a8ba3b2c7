/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"reflect"
)

// Strategy is a pluggable unit of copy logic for one category of runtime
// type. A Cloner chains multiple strategies in priority order (e.g.,
// Immutable -> Pointer -> Map -> Slice -> Array -> Struct fallback) and
// dispatches each value to the first strategy whose Supports predicate
// matches its type.
type Strategy interface {
	// Supports reports whether this strategy can copy values of type t.
	Supports(t reflect.Type) bool

	// Copy produces a copy of v. Implementations that allocate a new
	// container or instance MUST call ctx.RegisterVisited before
	// descending into children via ctx.Proceed, so that back references
	// to v resolve to the in-progress copy instead of recursing forever.
	//
	// An invalid (zero) reflect.Value result means "absent": the value
	// was deliberately dropped from the copy.
	Copy(v reflect.Value, ctx Context) (reflect.Value, error)
}
