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

// Cloner orchestrates deep clone operations over a fixed strategy chain.
// A Cloner is stateless with respect to any individual clone call and is
// safe for concurrent use; all per-call state lives in a Context created
// at the entry of each DeepClone invocation.
type Cloner interface {
	// DeepClone returns a deep, cycle-safe, topology-preserving copy of v.
	// A nil input is returned as nil without invoking any strategy.
	DeepClone(v any) (any, error)

	// StrategyFor returns the first strategy in chain order that supports t.
	// A chain built without a catch-all fallback surfaces ErrNoStrategy
	// here; that is a configuration defect, never silently tolerated.
	StrategyFor(t reflect.Type) (Strategy, error)
}

// Context is the per-invocation state of a single deep clone call. It owns
// the identity-keyed visited map that breaks cycles and preserves shared
// reference topology, and gives strategies a way to recurse into nested
// values through the same call state.
//
// A Context is exclusively owned by one DeepClone call and must never be
// retained by a strategy beyond the Copy invocation it was passed to.
type Context interface {
	// Proceed navigates one step deeper into the object graph. It handles
	// absent values, ignore markers, and already-visited originals before
	// delegating to the matched strategy. An invalid result means the
	// value was dropped by policy (ignore marker).
	Proceed(v reflect.Value) (reflect.Value, error)

	// RegisterVisited records the copy created for an original so later
	// references to the same original resolve to it. Only values with
	// reference identity (pointers, maps, slices) are tracked; value
	// kinds cannot participate in cycles and are ignored.
	RegisterVisited(original, copy reflect.Value)

	// Config returns the configuration the owning Cloner was built with.
	Config() Config

	// Markers returns the marker registry consulted during this call.
	Markers() Markers
}
