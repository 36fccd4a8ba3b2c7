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
	"errors"
	"reflect"
	"strings"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
)

// IsBasicKind reports whether k is a kind copied by plain assignment:
// booleans, all numeric kinds, and strings. Named types over these kinds
// (Go enums, time.Duration) are covered as well since classification is
// by kind, not by type identity.
func IsBasicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// IsOpaqueKind reports whether k is a handle-like kind that cannot be
// meaningfully deep-copied and is shared by reference instead: channels
// and functions.
func IsOpaqueKind(k reflect.Kind) bool {
	return k == reflect.Chan || k == reflect.Func
}

// Unwrap strips pointer indirections from t, up to maxUnwrap levels, and
// returns the pointee type. If maxUnwrap <= 0, DefaultMaxUnwrap applies.
// Unlike full container normalization, only pointers are unwrapped here:
// a marker or immutability classification for T must cover *T, but must
// not leak onto []T or map[K]T element types.
func Unwrap(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = defaultMaxUnwrap
	}
	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	return t, nil
}

// defaultMaxUnwrap mirrors config.DefaultMaxUnwrap without importing it
// (utils must stay a leaf package).
const defaultMaxUnwrap = 8

// MatchesPrefix reports whether t's package path (after pointer
// unwrapping) matches any of the given prefixes. A prefix p matches path
// q when q == p or q starts with p + "/", so "time" matches "time" but
// not "timeseries".
func MatchesPrefix(t reflect.Type, prefixes []string, maxUnwrap int) bool {
	if t == nil || len(prefixes) == 0 {
		return false
	}
	base, err := Unwrap(t, maxUnwrap)
	if err != nil {
		return false
	}
	path := base.PkgPath()
	if path == "" {
		return false
	}
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
