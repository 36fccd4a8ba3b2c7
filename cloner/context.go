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

package cloner

import (
	"reflect"

	"dirpx.dev/dcx/apis"
	uref "dirpx.dev/dcx/utils/reflect"
)

// context is the per-invocation state of one DeepClone call: the identity
// map from already-visited originals to their copies. It is created at
// call entry, exclusively owned by that call, and dropped at call exit;
// nothing is shared across independent clone operations.
type context struct {
	eng     *engine
	visited map[uref.Key]reflect.Value
}

// Ensure context implements apis.Context.
var _ apis.Context = (*context)(nil)

func newContext(e *engine) *context {
	return &context{eng: e, visited: make(map[uref.Key]reflect.Value)}
}

// Config returns the owning engine's configuration.
func (c *context) Config() apis.Config {
	return c.eng.cfg
}

// Markers returns the owning engine's marker registry.
func (c *context) Markers() apis.Markers {
	return c.eng.mk
}

// RegisterVisited records the copy created for original. Only values with
// reference identity are tracked; registering a value kind is a no-op.
func (c *context) RegisterVisited(original, copy reflect.Value) {
	if k, ok := uref.Identity(original); ok {
		c.visited[k] = copy
	}
}

// Proceed navigates one step deeper into the object graph:
//
//  1. absent values short-circuit (no strategy lookup);
//  2. interfaces are unwrapped to their dynamic value;
//  3. nil pointers/maps/slices pass through unchanged;
//  4. a type-level Ignore marker drops the value (policy, not error);
//  5. an already-visited original resolves to its cached copy, with no
//     new allocation and no strategy re-invocation;
//  6. otherwise the resolved strategy copies the value through this
//     same context.
func (c *context) Proceed(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return v, nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(v.Type()), nil
		}
		return c.Proceed(v.Elem())
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return v, nil
		}
	}

	if c.eng.mk != nil {
		if m, ok := c.eng.mk.TypeMarker(v.Type()); ok && m == apis.Ignore {
			return reflect.Value{}, nil
		}
	}

	if k, ok := uref.Identity(v); ok {
		if cp, hit := c.visited[k]; hit {
			return cp, nil
		}
	}

	s, err := c.eng.StrategyFor(v.Type())
	if err != nil {
		return reflect.Value{}, err
	}
	return s.Copy(v, c)
}
