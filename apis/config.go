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

// Config carries read-only cloning knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ImmutablePrefixes lists package-path prefixes whose types are treated
	// as immutable value types and shared by reference without copying
	// (e.g. "time", "math/big", "github.com/google/uuid"). A prefix p
	// matches package path q when q == p or q starts with p + "/".
	ImmutablePrefixes []string

	// CopyUnexported controls whether unexported struct fields are carried
	// into the copy. Go cannot set an unexported field individually, so
	// when true the struct fallback seeds the copy with a shallow
	// whole-value assignment (unexported state is shared, not deep-cloned);
	// when false unexported fields are left at their zero values.
	CopyUnexported bool

	// MaxUnwrap limits pointer unwrapping depth during type normalization
	// (marker lookup, immutable-prefix matching). Acts as a safety guard
	// against pathological pointer chains.
	MaxUnwrap int
}
