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

// NewMapStrategy creates the strategy for associative containers. The copy
// is always of the source's exact concrete (possibly named) map type:
// reflect.MakeMapWithSize constructs any map type directly, so no generic
// substitute container is ever needed. Both keys and values are cloned.
func NewMapStrategy() apis.Strategy {
	return mapStrategy{}
}

// mapStrategy deep-copies maps entry by entry.
type mapStrategy struct{}

// Ensure mapStrategy implements apis.Strategy.
var _ apis.Strategy = (*mapStrategy)(nil)

// Supports matches map kinds.
func (mapStrategy) Supports(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Map
}

// Copy allocates a detached map, registers it, and clones every entry.
// An entry whose key is dropped by an ignore marker is omitted entirely
// (a map cannot hold an absent key); a dropped value becomes the element
// type's zero value.
func (mapStrategy) Copy(v reflect.Value, ctx apis.Context) (reflect.Value, error) {
	t := v.Type()
	cp := reflect.MakeMapWithSize(t, v.Len())
	ctx.RegisterVisited(v, cp)

	iter := v.MapRange()
	for iter.Next() {
		k, err := ctx.Proceed(iter.Key())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("dcx(strategy): key in %s: %w", t, err)
		}
		if !k.IsValid() {
			continue
		}
		ev, err := ctx.Proceed(iter.Value())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("dcx(strategy): value in %s: %w", t, err)
		}
		if !ev.IsValid() {
			ev = reflect.Zero(t.Elem())
		}
		cp.SetMapIndex(k, ev)
	}
	return cp, nil
}
