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

package markers_test

import (
	"reflect"
	"testing"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/config"
	"dirpx.dev/dcx/markers"
)

func TestMarkType_IdempotentAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	// pointer -> normalized pointee = T1
	err := mk.MarkType(reflect.TypeOf(&T1{}), apis.Immutable)
	if err != nil {
		t.Fatalf("MarkType(&T1{}): unexpected error: %v", err)
	}
	// idempotent re-mark with same marker
	if err := mk.MarkType(reflect.TypeOf(&T1{}), apis.Immutable); err != nil {
		t.Fatalf("MarkType(&T1{}) idempotent: unexpected error: %v", err)
	}

	// lookup by exact type
	if m, ok := mk.TypeMarker(reflect.TypeOf(&T1{})); !ok || m != apis.Immutable {
		t.Fatalf("TypeMarker(&T1{}): got (%v,%v), want (immutable,true)", m, ok)
	}
	// lookup by value type should hit the same normalized base
	if m, ok := mk.TypeMarker(reflect.TypeOf(T1{})); !ok || m != apis.Immutable {
		t.Fatalf("TypeMarker(T1{}): got (%v,%v), want (immutable,true)", m, ok)
	}

	if mk.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", mk.Count())
	}
}

func TestMarkType_Conflict(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	if err := mk.MarkType(reflect.TypeOf(&T1{}), apis.Immutable); err != nil {
		t.Fatalf("MarkType: unexpected error: %v", err)
	}
	// Same normalized type, different marker -> conflict
	err := mk.MarkType(reflect.TypeOf(T1{}), apis.Ignore)
	if err == nil || err != markers.ErrConflictingMarker {
		t.Fatalf("expected ErrConflictingMarker, got: %v", err)
	}
}

func TestMark_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	if err := mk.MarkType(nil, apis.Immutable); err != markers.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := mk.MarkType(reflect.TypeOf(T1{}), apis.Marker(99)); err != markers.ErrInvalidMarker {
		t.Fatalf("invalid marker: want ErrInvalidMarker, got %v", err)
	}
	if err := mk.MarkField(reflect.TypeOf(42), "X", apis.Ignore); err != markers.ErrNotStruct {
		t.Fatalf("non-struct field mark: want ErrNotStruct, got %v", err)
	}
	if err := mk.MarkField(reflect.TypeOf(T1{}), "Nope", apis.Ignore); err != markers.ErrUnknownField {
		t.Fatalf("unknown field: want ErrUnknownField, got %v", err)
	}
}

func TestMarkField_Lookup(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	if err := mk.MarkField(reflect.TypeOf(&T2{}), "Secret", apis.Ignore); err != nil {
		t.Fatalf("MarkField: unexpected error: %v", err)
	}

	if m, ok := mk.FieldMarker(reflect.TypeOf(T2{}), "Secret"); !ok || m != apis.Ignore {
		t.Fatalf("FieldMarker(T2, Secret): got (%v,%v), want (ignore,true)", m, ok)
	}
	// Field markers do not leak onto the type itself.
	if _, ok := mk.TypeMarker(reflect.TypeOf(T2{})); ok {
		t.Fatalf("TypeMarker(T2): unexpected hit for field-level entry")
	}
	// Nor onto other fields.
	if _, ok := mk.FieldMarker(reflect.TypeOf(T2{}), "Public"); ok {
		t.Fatalf("FieldMarker(T2, Public): unexpected hit")
	}
}

func TestEntriesAndReset(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	_ = mk.MarkType(reflect.TypeOf(&T1{}), apis.Immutable)
	_ = mk.MarkField(reflect.TypeOf(&T2{}), "Secret", apis.Ignore)

	entries := mk.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if mk.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", mk.Count())
	}

	mk.Reset()

	if mk.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", mk.Count())
	}
	if _, ok := mk.TypeMarker(reflect.TypeOf(T1{})); ok {
		t.Fatalf("TypeMarker after Reset: unexpected hit")
	}
}

func TestLookupNilAndUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)

	if _, ok := mk.TypeMarker(nil); ok {
		t.Fatalf("TypeMarker(nil): unexpected hit")
	}
	if _, ok := mk.TypeMarker(reflect.TypeOf(T1{})); ok {
		t.Fatalf("TypeMarker(unknown): unexpected hit")
	}
	if _, ok := mk.FieldMarker(reflect.TypeOf(T2{}), ""); ok {
		t.Fatalf("FieldMarker(empty name): unexpected hit")
	}
}
