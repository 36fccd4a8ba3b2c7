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

// NewArrayStrategy creates the strategy for fixed-length arrays. Arrays
// are values in Go: they have no reference identity and cannot appear in
// a cycle, so the copy is not registered in the visited map.
func NewArrayStrategy() apis.Strategy {
	return arrayStrategy{}
}

// arrayStrategy deep-copies arrays slot by slot.
type arrayStrategy struct{}

// Ensure arrayStrategy implements apis.Strategy.
var _ apis.Strategy = (*arrayStrategy)(nil)

// Supports matches array kinds.
func (arrayStrategy) Supports(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Array
}

// Copy allocates an array of identical element type and length and clones
// every slot.
func (arrayStrategy) Copy(v reflect.Value, ctx apis.Context) (reflect.Value, error) {
	t := v.Type()
	cp := reflect.New(t).Elem()

	if uref.IsBasicKind(t.Elem().Kind()) {
		cp.Set(v)
		return cp, nil
	}

	for i := 0; i < v.Len(); i++ {
		ev, err := ctx.Proceed(v.Index(i))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("dcx(strategy): slot %d of %s: %w", i, t, err)
		}
		if ev.IsValid() {
			cp.Index(i).Set(ev)
		}
	}
	return cp, nil
}
