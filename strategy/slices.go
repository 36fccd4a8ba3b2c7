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

package strategy

import (
	"fmt"
	"reflect"

	"dirpx.dev/dcx/apis"
	uref "dirpx.dev/dcx/utils/reflect"
)

// NewSliceStrategy creates the strategy for sequences. Go collapses the
// sequence/set distinction into slices (map-backed sets are handled by the
// map strategy); element order is preserved and the copy keeps the
// source's concrete type, length, and capacity.
func NewSliceStrategy() apis.Strategy {
	return sliceStrategy{}
}

// sliceStrategy deep-copies slices element by element, with a bulk copy
// fast path for basic element kinds ([]byte, []int, ...).
type sliceStrategy struct{}

// Ensure sliceStrategy implements apis.Strategy.
var _ apis.Strategy = (*sliceStrategy)(nil)

// Supports matches slice kinds.
func (sliceStrategy) Supports(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Slice
}

// Copy allocates a detached slice, registers it, and clones every element
// in original order.
func (sliceStrategy) Copy(v reflect.Value, ctx apis.Context) (reflect.Value, error) {
	t := v.Type()
	cp := reflect.MakeSlice(t, v.Len(), v.Cap())
	ctx.RegisterVisited(v, cp)

	if uref.IsBasicKind(t.Elem().Kind()) {
		reflect.Copy(cp, v)
		return cp, nil
	}

	for i := 0; i < v.Len(); i++ {
		ev, err := ctx.Proceed(v.Index(i))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("dcx(strategy): element %d of %s: %w", i, t, err)
		}
		if ev.IsValid() {
			cp.Index(i).Set(ev)
		}
	}
	return cp, nil
}
