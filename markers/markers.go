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

package markers

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/config"
	uref "dirpx.dev/dcx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("dcx(markers): nil reflect.Type provided")
	// ErrInvalidMarker is returned when an unknown marker value is provided.
	ErrInvalidMarker = errors.New("dcx(markers): invalid marker provided")
	// ErrNotStruct is returned when a field marker targets a non-struct type.
	ErrNotStruct = errors.New("dcx(markers): field markers require a struct type")
	// ErrUnknownField is returned when the named field does not exist on the type.
	ErrUnknownField = errors.New("dcx(markers): no such field on type")
	// ErrConflictingMarker indicates an attempt to re-mark a target with a
	// different marker.
	ErrConflictingMarker = errors.New("dcx(markers): conflicting marker registration")
)

// New constructs a Markers registry that normalizes types according to cfg.
// Only MaxUnwrap is used here (pointer unwrapping during key normalization).
func New(cfg apis.Config) apis.Markers {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// key addresses one directive: a type, or a named field of a struct type.
type key struct {
	t     reflect.Type
	field string
}

// registry is a simple Markers implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps key to apis.Marker.
	m sync.Map // map[key]apis.Marker
	// count tracks the number of registered entries.
	count int
}

// MarkType attaches marker m to the pointee-normalized form of t.
// It is idempotent for the same (type, marker) pair.
func (r *registry) MarkType(t reflect.Type, m apis.Marker) error {
	if t == nil {
		return ErrNilType
	}
	if m != apis.Immutable && m != apis.Ignore {
		return ErrInvalidMarker
	}
	base, err := uref.Unwrap(t, r.cfg.MaxUnwrap)
	if err != nil {
		return err
	}
	return r.put(key{t: base}, m)
}

// MarkField attaches marker m to the named field of struct type t.
func (r *registry) MarkField(t reflect.Type, field string, m apis.Marker) error {
	if t == nil {
		return ErrNilType
	}
	if m != apis.Immutable && m != apis.Ignore {
		return ErrInvalidMarker
	}
	base, err := uref.Unwrap(t, r.cfg.MaxUnwrap)
	if err != nil {
		return err
	}
	if base.Kind() != reflect.Struct {
		return ErrNotStruct
	}
	if _, ok := base.FieldByName(field); !ok {
		return ErrUnknownField
	}
	return r.put(key{t: base, field: field}, m)
}

// put stores one directive with idempotency/conflict semantics.
func (r *registry) put(k key, m apis.Marker) error {
	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(k); ok {
		if old.(apis.Marker) == m {
			return nil // idempotent re-registration
		}
		return ErrConflictingMarker
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(k); ok {
		if old.(apis.Marker) == m {
			return nil
		}
		return ErrConflictingMarker
	}

	r.m.Store(k, m)
	r.count++
	return nil
}

// TypeMarker returns the marker attached to t, if any.
func (r *registry) TypeMarker(t reflect.Type) (apis.Marker, bool) {
	if t == nil {
		return 0, false
	}
	base, err := uref.Unwrap(t, r.cfg.MaxUnwrap)
	if err != nil {
		return 0, false
	}
	if v, ok := r.m.Load(key{t: base}); ok {
		return v.(apis.Marker), true
	}
	return 0, false
}

// FieldMarker returns the marker attached to the named field of t, if any.
func (r *registry) FieldMarker(t reflect.Type, field string) (apis.Marker, bool) {
	if t == nil || field == "" {
		return 0, false
	}
	base, err := uref.Unwrap(t, r.cfg.MaxUnwrap)
	if err != nil {
		return 0, false
	}
	if v, ok := r.m.Load(key{t: base, field: field}); ok {
		return v.(apis.Marker), true
	}
	return 0, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.MarkerEntry {
	entries := make([]apis.MarkerEntry, 0, r.Count())
	r.m.Range(func(k, v any) bool {
		kk := k.(key)
		entries = append(entries, apis.MarkerEntry{
			Type:   kk.t,
			Field:  kk.field,
			Marker: v.(apis.Marker),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
