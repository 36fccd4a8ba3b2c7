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

package reflect

import (
	"reflect"
)

// Key identifies a reference-shaped value for visited-map bookkeeping.
// The address alone is not sufficient: a pointer to a struct and a pointer
// to its first field share an address but are distinct objects, so the
// type participates in the key. For slices the length participates too,
// since two slice headers over the same backing array with different
// lengths are distinct objects.
type Key struct {
	// Type is the value's reflect.Type.
	Type reflect.Type
	// Addr is the referenced address.
	Addr uintptr
	// Len is the slice length; zero for non-slice kinds.
	Len int
}

// Identity returns the identity key of v, and whether v has reference
// identity at all. Only non-nil pointers, maps, and slices do; structs,
// arrays, and basic kinds are values and cannot be aliased or form cycles.
func Identity(v reflect.Value) (Key, bool) {
	if !v.IsValid() {
		return Key{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return Key{}, false
		}
		return Key{Type: v.Type(), Addr: v.Pointer()}, true
	case reflect.Slice:
		if v.IsNil() {
			return Key{}, false
		}
		return Key{Type: v.Type(), Addr: v.Pointer(), Len: v.Len()}, true
	default:
		return Key{}, false
	}
}
