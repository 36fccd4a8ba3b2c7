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
	"reflect"
	"sync"

	"dirpx.dev/dcx/apis"
	uref "dirpx.dev/dcx/utils/reflect"
)

// NewImmutableStrategy creates the highest-priority built-in strategy: it
// matches values that are semantically immutable (or handle-like) and
// returns them unchanged. Sharing is correct and required here; no
// allocation, no traversal, no context registration happens.
//
// Matched categories:
//   - basic kinds (bool, numerics, string) and named types over them
//     (Go enums, time.Duration);
//   - channels and funcs (opaque handles, shared by reference);
//   - types (or pointees) whose package path matches one of
//     cfg.ImmutablePrefixes, e.g. time.Time, big.Int, uuid.UUID;
//   - types carrying the Immutable marker in mk.
func NewImmutableStrategy(cfg apis.Config, mk apis.Markers) apis.Strategy {
	return &immutableStrategy{cfg: cfg, mk: mk}
}

// immutableStrategy shares values by reference instead of copying them.
type immutableStrategy struct {
	cfg apis.Config
	mk  apis.Markers
	// memo caches the config-derived classification per type. Marker
	// lookups are never cached: the registry is live-mutable.
	memo sync.Map // reflect.Type -> bool
}

// Ensure immutableStrategy implements apis.Strategy.
var _ apis.Strategy = (*immutableStrategy)(nil)

// Supports reports whether t is immutable by kind, prefix, or marker.
func (s *immutableStrategy) Supports(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if s.classify(t) {
		return true
	}
	if s.mk != nil {
		if m, ok := s.mk.TypeMarker(t); ok && m == apis.Immutable {
			return true
		}
	}
	return false
}

// Copy returns the original value unchanged.
func (s *immutableStrategy) Copy(v reflect.Value, _ apis.Context) (reflect.Value, error) {
	return v, nil
}

// classify computes the marker-independent immutability of t, memoized.
func (s *immutableStrategy) classify(t reflect.Type) bool {
	if v, ok := s.memo.Load(t); ok {
		return v.(bool)
	}
	k := t.Kind()
	res := uref.IsBasicKind(k) ||
		uref.IsOpaqueKind(k) ||
		uref.MatchesPrefix(t, s.cfg.ImmutablePrefixes, s.cfg.MaxUnwrap)
	s.memo.Store(t, res)
	return res
}
