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

package reflect_test

import (
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	uref "dirpx.dev/dcx/utils/reflect"
)

// Local test types.
type A struct{ N int }
type Enum int

func TestIsBasicKind(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"bool", true, true},
		{"int", 42, true},
		{"uint8", uint8(1), true},
		{"float64", 3.14, true},
		{"complex", complex(1, 2), true},
		{"string", "x", true},
		{"named int", Enum(1), true},
		{"duration", time.Second, true},
		{"struct", A{}, false},
		{"slice", []int{}, false},
		{"map", map[string]int{}, false},
		{"ptr", &A{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.IsBasicKind(reflect.TypeOf(tc.val).Kind()); got != tc.want {
				t.Fatalf("IsBasicKind(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestIsOpaqueKind(t *testing.T) {
	if !uref.IsOpaqueKind(reflect.Chan) || !uref.IsOpaqueKind(reflect.Func) {
		t.Fatalf("chan/func must be opaque")
	}
	if uref.IsOpaqueKind(reflect.Struct) || uref.IsOpaqueKind(reflect.Pointer) {
		t.Fatalf("struct/ptr must not be opaque")
	}
}

func TestUnwrap(t *testing.T) {
	var pp **A
	base, err := uref.Unwrap(reflect.TypeOf(pp), 8)
	if err != nil {
		t.Fatalf("Unwrap(**A): %v", err)
	}
	if base != reflect.TypeOf(A{}) {
		t.Fatalf("Unwrap(**A) = %s, want reflect.A", base)
	}

	// MaxUnwrap = 1 stops at *A.
	base, err = uref.Unwrap(reflect.TypeOf(pp), 1)
	if err != nil {
		t.Fatalf("Unwrap(**A, 1): %v", err)
	}
	if base.Kind() != reflect.Pointer {
		t.Fatalf("Unwrap(**A, 1) kind = %s, want ptr", base.Kind())
	}

	// Non-pointer types pass through unchanged.
	if base, _ = uref.Unwrap(reflect.TypeOf([]A{}), 8); base != reflect.TypeOf([]A{}) {
		t.Fatalf("Unwrap([]A) must not unwrap slices, got %s", base)
	}

	if _, err = uref.Unwrap(nil, 8); err != uref.ErrReflectNilType {
		t.Fatalf("Unwrap(nil): want ErrReflectNilType, got %v", err)
	}
}

func TestMatchesPrefix(t *testing.T) {
	cases := []struct {
		name     string
		typ      reflect.Type
		prefixes []string
		want     bool
	}{
		{"time.Time exact", reflect.TypeOf(time.Time{}), []string{"time"}, true},
		{"*time.Time via unwrap", reflect.TypeOf(&time.Time{}), []string{"time"}, true},
		{"big.Int subpath", reflect.TypeOf(big.Int{}), []string{"math/big"}, true},
		{"uuid full path", reflect.TypeOf(uuid.UUID{}), []string{"github.com/google/uuid"}, true},
		{"uuid parent path", reflect.TypeOf(uuid.UUID{}), []string{"github.com/google"}, true},
		{"no slash overreach", reflect.TypeOf(time.Time{}), []string{"tim"}, false},
		{"builtin no pkg", reflect.TypeOf(42), []string{"time"}, false},
		{"empty prefixes", reflect.TypeOf(time.Time{}), nil, false},
		{"empty prefix entry", reflect.TypeOf(time.Time{}), []string{""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.MatchesPrefix(tc.typ, tc.prefixes, 8); got != tc.want {
				t.Fatalf("MatchesPrefix(%s, %v) = %v, want %v", tc.typ, tc.prefixes, got, tc.want)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	a := &A{N: 1}

	k1, ok := uref.Identity(reflect.ValueOf(a))
	if !ok {
		t.Fatalf("Identity(*A): want identity")
	}
	k2, _ := uref.Identity(reflect.ValueOf(a))
	if k1 != k2 {
		t.Fatalf("Identity must be stable for the same pointer")
	}

	b := &A{N: 1}
	k3, _ := uref.Identity(reflect.ValueOf(b))
	if k1 == k3 {
		t.Fatalf("distinct pointers must have distinct identities")
	}

	// Values have no identity.
	if _, ok := uref.Identity(reflect.ValueOf(A{})); ok {
		t.Fatalf("struct value must have no identity")
	}
	if _, ok := uref.Identity(reflect.ValueOf(42)); ok {
		t.Fatalf("int must have no identity")
	}

	// Nil references have no identity.
	var np *A
	if _, ok := uref.Identity(reflect.ValueOf(np)); ok {
		t.Fatalf("nil pointer must have no identity")
	}

	// Slices: same backing array, different lengths -> distinct objects.
	s := []int{1, 2, 3, 4}
	ka, _ := uref.Identity(reflect.ValueOf(s))
	kb, _ := uref.Identity(reflect.ValueOf(s[:2]))
	if ka == kb {
		t.Fatalf("slices of different lengths must have distinct identities")
	}
	kc, _ := uref.Identity(reflect.ValueOf(s))
	if ka != kc {
		t.Fatalf("identical slice headers must share identity")
	}
}
