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

// Package dcx provides a generic, cycle-safe deep-clone engine.
//
// dcx takes an arbitrary object graph — primitives, pointers, maps,
// slices, arrays, structs, with cycles and shared references of any
// shape — and produces a structurally identical but fully detached copy.
// Immutable values are shared by reference instead of copied, and
// declarative markers let callers exclude individual types or fields
// from copies.
//
// # Design
//
// The core of dcx is a chain of copy strategies resolved per runtime
// type, threaded through a per-call context:
//
//   - Strategy: one unit of copy logic for one category of type. A
//     strategy answers Supports(type) and performs Copy(value, ctx).
//     Built-ins cover immutable values, pointers, maps, slices, arrays,
//     and a reflective struct fallback that matches everything. User
//     strategies are prepended ahead of the built-ins and win ties.
//
//   - Context: the state of a single DeepClone call. It owns an
//     identity-keyed visited map from original to copy; strategies
//     register each new container before populating it, so a child
//     reference back to an ancestor resolves to the in-progress copy
//     instead of recursing forever. Cycles and diamond-shaped sharing
//     come out topologically identical to the source.
//
//   - Markers: an out-of-band registry of copy directives. A type or
//     field marked Immutable is shared by reference; one marked Ignore
//     is omitted from copies entirely (secrets, handles). Struct tags
//     (`dcx:"ignore"`, `dcx:"shared"`) are the in-source equivalent.
//
//   - Builder: a pluggable factory that constructs Markers and Cloner
//     instances for a given Config, optionally migrating state from
//     previous instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means clones through the facade are lock-free on the hot path:
//
//	copy, err := dcx.Clone(order)
//	raw, err := dcx.DeepClone(anyGraph)
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Clone helpers:
//
//     DeepClone(v any) (any, error)
//     Clone[T any](v T) (T, error)
//     MustClone[T any](v T) T
//     NewCloner(custom ...apis.Strategy) apis.Cloner
//
//     These are safe for concurrent use without additional locking.
//     Each call owns its context; independent calls never share state.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetMarkers(mk apis.Markers)
//     SetCloner(cln apis.Cloner)
//     MarkImmutable[T]() / MarkIgnored[T]() / MarkFieldIgnored[T](name)
//     UnpinMarkers() / UnpinCloner()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Markers / Cloner as needed),
//     and then atomically publishes that snapshot. SetAll is the
//     "hard reset" API, mainly used by tests to get a clean
//     deterministic state between cases.
//
//  3. Introspection:
//
//     Config(), Markers(), Engine(), Builder(), ExtAs[T]()
//     // plus Markers().Entries(), etc.
//
// # Semantics
//
// The copy contract, for any value v:
//
//   - immutable values (basic kinds, enums, time.Time, big.Int,
//     uuid.UUID, marker-immutable types) come back as the same value or
//     reference — sharing is semantically correct there;
//   - composite values come back detached: mutating the copy never
//     affects the original, at any depth;
//   - cycle and sharing topology is preserved: if a.next.next == a in
//     the source, the same holds in the copy, and a diamond reference
//     is not duplicated into two copies;
//   - a nil input returns nil without invoking any strategy; an
//     Ignore-marked type or field yields its zero/absent value by
//     policy, not by error.
//
// Cloning is a pure, synchronous, deterministic transform. There is no
// retry anywhere: a failure (strategy chain without a catch-all, an
// unsafe.Pointer in the graph) indicates a structural incompatibility to
// fix by registering a custom Strategy, not by calling again.
//
// # Concurrency model
//
// Reads (DeepClone, Clone, Engine, Markers) are wait-free: they load the
// current *state atomically and never take locks. Strategies and cloners
// are stateless with respect to any individual clone call; their internal
// caches are concurrency-safe. Writers take a short build mutex, assemble
// a brand-new state struct, and publish it via an atomic pointer swap.
//
// # Pinning
//
// dcx supports pinning a layer, exactly like the registry/resolver
// pinning in its sibling packages: SetMarkers(mk) pins that registry so
// later SetConfig calls will not rebuild it until UnpinMarkers();
// SetCloner(cln) pins the engine likewise. Pinning is for advanced
// scenarios where one layer is managed externally while the rest of the
// snapshot keeps evolving.
//
// # Scope
//
// dcx is intentionally small. It does not serialize, does not persist,
// and defines no wire format; it operates purely in-process on live
// object graphs. Path-based graph access, string helpers, and storage
// abstractions belong to higher layers.
package dcx
