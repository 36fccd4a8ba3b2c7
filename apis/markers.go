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

package apis

import "reflect"

// Marker is a declarative copy directive attached to a type or to an
// individual struct field. Markers are metadata looked up by the engine,
// not data flowing through the graph.
type Marker uint8

const (
	// Immutable marks a type or field as shareable by reference: the
	// engine returns the original value unchanged instead of copying it.
	Immutable Marker = iota + 1

	// Ignore marks a type or field to be omitted from copies entirely,
	// yielding the zero/absent value. This is policy, not an error:
	// secrets and handle-bearing resources are intentionally dropped.
	Ignore
)

// String returns the marker's canonical name.
func (m Marker) String() string {
	switch m {
	case Immutable:
		return "immutable"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Markers provides an out-of-band registry of copy directives keyed by
// type or by (type, field). Keep it minimal so implementations can be
// lock-free or sync.Map-backed.
type Markers interface {
	// MarkType attaches a marker to a type. Pointer types are normalized
	// to their pointee, so marking *T and T is equivalent.
	// Implementations should be idempotent; conflicting re-marking errors.
	MarkType(t reflect.Type, m Marker) error
	// MarkField attaches a marker to a named field of a struct type.
	MarkField(t reflect.Type, field string, m Marker) error
	// TypeMarker returns the marker attached to a type, if any.
	TypeMarker(t reflect.Type) (Marker, bool)
	// FieldMarker returns the marker attached to a struct field, if any.
	FieldMarker(t reflect.Type, field string) (Marker, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []MarkerEntry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// MarkerEntry is a single directive in a Markers snapshot.
type MarkerEntry struct {
	// Type is the marked reflect.Type.
	Type reflect.Type
	// Field is the marked field name, or "" for a type-level entry.
	Field string
	// Marker is the attached directive.
	Marker Marker
}
