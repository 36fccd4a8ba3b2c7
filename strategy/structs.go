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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/dcx/apis"
)

var (
	// ErrUnclonable indicates a value whose kind cannot be deep-cloned
	// into a detached instance (unsafe.Pointer). Surfaced to the caller
	// of the top-level clone; never retried, never partially copied.
	ErrUnclonable = errors.New("dcx(strategy): value cannot be deep-cloned")
)

// TagName is the struct tag consulted for per-field directives, the
// in-source equivalent of the marker registry:
//
//	Password string `dcx:"ignore"` // omitted from copies ("-" also works)
//	Loc      *Locale `dcx:"shared"` // shared by reference, not cloned
const TagName = "dcx"

// NewStructStrategy creates the reflective fallback: the lowest-priority,
// catch-all strategy that copies a struct by walking its fields. Embedded
// structs are ordinary fields, so the ancestor chain is walked implicitly.
//
// Go cannot set an unexported field individually, but a whole-value
// assignment carries them: when cfg.CopyUnexported holds, the copy is
// seeded with a shallow assignment of the source and exported fields are
// then deep-cloned over it. Otherwise unexported fields stay zero.
func NewStructStrategy() apis.Strategy {
	return structStrategy{}
}

// structStrategy is the universal fallback; Supports always matches.
type structStrategy struct{}

// Ensure structStrategy implements apis.Strategy.
var _ apis.Strategy = (*structStrategy)(nil)

// Supports matches every type; this strategy terminates every chain.
func (structStrategy) Supports(t reflect.Type) bool {
	return t != nil
}

// Copy clones a struct field by field. Non-struct kinds that slip past the
// more specific strategies are shared as-is, except unsafe.Pointer which
// is refused.
func (structStrategy) Copy(v reflect.Value, ctx apis.Context) (reflect.Value, error) {
	t := v.Type()
	switch t.Kind() {
	case reflect.Struct:
	case reflect.UnsafePointer:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnclonable, t)
	default:
		// Reachable only through custom chains that omit the more
		// specific built-ins; sharing is the safe total behavior.
		return v, nil
	}

	cp := reflect.New(t).Elem()
	if ctx.Config().CopyUnexported {
		cp.Set(v)
	}

	mk := ctx.Markers()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		dir := fieldDirective(f, t, mk)
		switch dir {
		case apis.Ignore:
			cp.Field(i).Set(reflect.Zero(f.Type))
			continue
		case apis.Immutable:
			cp.Field(i).Set(v.Field(i))
			continue
		}

		fv, err := ctx.Proceed(v.Field(i))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("dcx(strategy): field %s.%s: %w", t, f.Name, err)
		}
		if fv.IsValid() {
			cp.Field(i).Set(fv)
		} else {
			cp.Field(i).Set(reflect.Zero(f.Type))
		}
	}
	return cp, nil
}

// fieldDirective resolves the effective per-field directive: the struct
// tag wins over the marker registry, mirroring how in-source declarations
// shadow out-of-band configuration.
func fieldDirective(f reflect.StructField, owner reflect.Type, mk apis.Markers) apis.Marker {
	switch tag, _, _ := strings.Cut(f.Tag.Get(TagName), ","); tag {
	case "ignore", "-":
		return apis.Ignore
	case "shared", "immutable":
		return apis.Immutable
	}
	if mk != nil {
		if m, ok := mk.FieldMarker(owner, f.Name); ok {
			return m
		}
	}
	return 0
}
