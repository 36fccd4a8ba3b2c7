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
)

// NewPointerStrategy creates the strategy for pointer values: allocate a
// same-type pointer, register it, then clone the pointee into it. The new
// pointer is registered before the pointee is cloned, which is what makes
// self-referential chains terminate.
func NewPointerStrategy() apis.Strategy {
	return pointerStrategy{}
}

// pointerStrategy deep-copies pointers. Nil pointers never reach Copy;
// the context passes them through untouched.
type pointerStrategy struct{}

// Ensure pointerStrategy implements apis.Strategy.
var _ apis.Strategy = (*pointerStrategy)(nil)

// Supports matches pointer kinds.
func (pointerStrategy) Supports(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Pointer
}

// Copy allocates a detached pointer and clones the pointee.
func (pointerStrategy) Copy(v reflect.Value, ctx apis.Context) (reflect.Value, error) {
	cp := reflect.New(v.Type().Elem())
	ctx.RegisterVisited(v, cp)

	ev, err := ctx.Proceed(v.Elem())
	if err != nil {
		return reflect.Value{}, fmt.Errorf("dcx(strategy): pointee of %s: %w", v.Type(), err)
	}
	if ev.IsValid() {
		cp.Elem().Set(ev)
	}
	return cp, nil
}
