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

package config

import (
	"dirpx.dev/dcx/apis"
)

const (
	// DefaultCopyUnexported represents the default for CopyUnexported.
	// When true, unexported struct state is carried shallowly into copies.
	DefaultCopyUnexported = true

	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// DefaultImmutablePrefixes returns the package-path prefixes treated as
// immutable out of the box: standard-library value types (time, math/big,
// net/netip) plus well-known third-party value libraries. Callers receive
// a fresh slice and may modify it freely.
func DefaultImmutablePrefixes() []string {
	return []string{
		"time",
		"math/big",
		"net/netip",
		"github.com/google/uuid",
	}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ImmutablePrefixes: DefaultImmutablePrefixes(),
		CopyUnexported:    DefaultCopyUnexported,
		MaxUnwrap:         DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithImmutablePrefixes replaces the immutable package-path prefix list.
func WithImmutablePrefixes(prefixes ...string) Option {
	return func(c *apis.Config) {
		c.ImmutablePrefixes = prefixes
	}
}

// WithAddedImmutablePrefixes appends prefixes to the current list.
func WithAddedImmutablePrefixes(prefixes ...string) Option {
	return func(c *apis.Config) {
		c.ImmutablePrefixes = append(c.ImmutablePrefixes, prefixes...)
	}
}

// WithCopyUnexported sets the CopyUnexported option.
func WithCopyUnexported(copy bool) Option {
	return func(c *apis.Config) {
		c.CopyUnexported = copy
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
