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

package dcx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/builder"
	"dirpx.dev/dcx/config"
)

// init initializes the global engine state.
func init() {
	// Initialize state with default cfg, mk, and cln.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.mk = b.BuildMarkers(s.cfg, nil, nil)
	s.cln = b.BuildCloner(s.cfg, s.mk, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilMarkers is returned when a builder returns a nil marker registry.
	ErrNilMarkers = errors.New("dcx: builder returned nil markers")
	// ErrNilCloner is returned when a builder returns a nil cloner.
	ErrNilCloner = errors.New("dcx: builder returned nil cloner")
)

// DeepClone returns a deep, cycle-safe, topology-preserving copy of v
// using the global default engine. Nil input yields nil.
// This is a convenience wrapper around the global cln.
func DeepClone(v any) (any, error) {
	return st.Load().cln.DeepClone(v)
}

// Clone is the typed variant of DeepClone: the copy is returned as T,
// sparing callers the type assertion.
func Clone[T any](v T) (T, error) {
	out, err := DeepClone(v)
	if err != nil || out == nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}

// MustClone is like Clone but panics on error. Intended for graphs known
// to be clonable (no exotic kinds, chain correctly configured).
func MustClone[T any](v T) T {
	out, err := Clone(v)
	if err != nil {
		panic(err)
	}
	return out
}

// NewCloner constructs an independent engine from the current global
// configuration and marker registry, with the given custom strategies
// prepended ahead of the built-in chain (first listed wins ties).
// The returned cloner is unaffected by later global reconfiguration.
func NewCloner(custom ...apis.Strategy) apis.Cloner {
	s := st.Load()
	var ext any
	if len(custom) > 0 {
		ext = custom
	}
	return s.bld.BuildCloner(s.cfg, s.mk, nil, ext)
}

// MarkImmutable registers T (and therefore *T) as shareable by reference
// in the global marker registry.
// This is a convenience wrapper around the global mk.
func MarkImmutable[T any]() error {
	return st.Load().mk.MarkType(typeOf[T](), apis.Immutable)
}

// MarkIgnored registers T (and therefore *T) to be omitted from copies.
// This is a convenience wrapper around the global mk.
func MarkIgnored[T any]() error {
	return st.Load().mk.MarkType(typeOf[T](), apis.Ignore)
}

// MarkFieldIgnored registers a field of struct type T to be omitted from
// copies, the out-of-band equivalent of a `dcx:"ignore"` tag.
func MarkFieldIgnored[T any](field string) error {
	return st.Load().mk.MarkField(typeOf[T](), field, apis.Ignore)
}

// MarkFieldShared registers a field of struct type T as shareable by
// reference, the out-of-band equivalent of a `dcx:"shared"` tag.
func MarkFieldShared[T any](field string) error {
	return st.Load().mk.MarkField(typeOf[T](), field, apis.Immutable)
}

// typeOf resolves the reflect.Type of T without allocating a T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetAll explicitly sets all global dcx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, mk apis.Markers, cln apis.Cloner, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Markers
	nmk := mk
	npmk := false
	if nmk == nil {
		nmk = nbld.BuildMarkers(ncfg, old.mk, next)
	} else {
		npmk = true
	}

	// Cloner
	ncln := cln
	npcln := false
	if ncln == nil {
		ncln = nbld.BuildCloner(ncfg, nmk, old.cln, next)
	} else {
		npcln = true
	}

	// Ensure non-nil mk and cln.
	if nmk == nil {
		panic(ErrNilMarkers)
	}
	if ncln == nil {
		panic(ErrNilCloner)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			mk:   nmk,
			cln:  ncln,
			bld:  nbld,
			pmk:  npmk,
			pcln: npcln,
		},
	)
}

// Config returns the global dcx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global dcx configuration to cfg.
// It rebuilds the global mk and cln using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new mk and cln based on the new cfg and old state.
	nmk := old.mk
	if !old.pmk {
		nmk = b.BuildMarkers(cfg, old.mk, old.ext)
	}
	ncln := old.cln
	if !old.pcln {
		ncln = b.BuildCloner(cfg, nmk, old.cln, old.ext)
	}

	// Ensure non-nil mk and cln.
	if nmk == nil {
		panic(ErrNilMarkers)
	}
	if ncln == nil {
		panic(ErrNilCloner)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			mk:   nmk,
			cln:  ncln,
			bld:  b,
			pmk:  old.pmk,
			pcln: old.pcln,
		},
	)
}

// Markers returns the global dcx marker registry.
func Markers() apis.Markers {
	return st.Load().mk
}

// SetMarkers sets the global dcx marker registry to mk.
// It uses the global dcx configuration to rebuild the global cln.
// This is a convenience wrapper around the global state.
func SetMarkers(mk apis.Markers) {
	if mk == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new cln based on the old cfg and new mk.
	ncln := old.cln
	if !old.pcln {
		ncln = b.BuildCloner(old.cfg, mk, old.cln, old.ext)
	}

	// Ensure non-nil cln.
	if ncln == nil {
		panic(ErrNilCloner)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   mk,
			cln:  ncln,
			bld:  b,
			pmk:  true,
			pcln: old.pcln,
		},
	)
}

// Engine returns the global dcx cloner.
func Engine() apis.Cloner {
	return st.Load().cln
}

// SetCloner sets the global dcx cloner to cln.
// This is a convenience wrapper around the global state.
func SetCloner(cln apis.Cloner) {
	if cln == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   old.mk,
			cln:  cln,
			bld:  old.bld,
			pmk:  old.pmk,
			pcln: true,
		},
	)
}

// Builder returns the global dcx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global dcx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new mk and cln based on the new bld and old state.
	nmk := old.mk
	if !old.pmk {
		nmk = b.BuildMarkers(old.cfg, old.mk, old.ext)
	}
	ncln := old.cln
	if !old.pcln {
		ncln = b.BuildCloner(old.cfg, nmk, old.cln, old.ext)
	}

	// Ensure non-nil mk and cln.
	if nmk == nil {
		panic(ErrNilMarkers)
	}
	if ncln == nil {
		panic(ErrNilCloner)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   nmk,
			cln:  ncln,
			bld:  b,
			pmk:  old.pmk,
			pcln: old.pcln,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new mk and cln based on the new ext and old state.
	nmk := old.mk
	if !old.pmk {
		nmk = b.BuildMarkers(old.cfg, old.mk, ext)
	}
	ncln := old.cln
	if !old.pcln {
		ncln = b.BuildCloner(old.cfg, nmk, old.cln, ext)
	}

	// Ensure non-nil mk and cln.
	if nmk == nil {
		panic(ErrNilMarkers)
	}
	if ncln == nil {
		panic(ErrNilCloner)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			mk:   nmk,
			cln:  ncln,
			bld:  b,
			pmk:  old.pmk,
			pcln: old.pcln,
		},
	)
}

// ExtAs returns the global dcx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsMarkersPinned returns whether the global dcx marker registry is pinned (immutable).
func IsMarkersPinned() bool {
	return st.Load().pmk
}

// PinMarkers makes the global dcx marker registry immutable.
func PinMarkers() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   old.mk,
			cln:  old.cln,
			bld:  old.bld,
			pmk:  true,
			pcln: old.pcln,
		},
	)
}

// UnpinMarkers makes the global dcx marker registry mutable again.
func UnpinMarkers() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   old.mk,
			cln:  old.cln,
			bld:  old.bld,
			pmk:  false,
			pcln: old.pcln,
		},
	)
}

// IsClonerPinned returns whether the global dcx cloner is pinned (immutable).
func IsClonerPinned() bool {
	return st.Load().pcln
}

// PinCloner makes the global dcx cloner immutable.
func PinCloner() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   old.mk,
			cln:  old.cln,
			bld:  old.bld,
			pmk:  old.pmk,
			pcln: true,
		},
	)
}

// UnpinCloner makes the global dcx cloner mutable again.
func UnpinCloner() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			mk:   old.mk,
			cln:  old.cln,
			bld:  old.bld,
			pmk:  old.pmk,
			pcln: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global dcx state.
var st atomic.Pointer[state]

// state is the global dcx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global dcx configuration.
	cfg apis.Config
	// ext is the global dcx extension configuration.
	ext any
	// mk is the global dcx marker registry.
	mk apis.Markers
	// cln is the global dcx cloner.
	cln apis.Cloner
	// bld is the global dcx builder.
	bld apis.Builder
	// pmk indicates whether the marker registry is pinned (immutable).
	pmk bool
	// pcln indicates whether the cloner is pinned (immutable).
	pcln bool
}
