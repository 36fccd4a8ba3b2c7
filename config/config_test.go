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

package config_test

import (
	"testing"

	"dirpx.dev/dcx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if !cfg.CopyUnexported {
		t.Fatalf("CopyUnexported default = false, want true")
	}
	if cfg.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap default = %d, want %d", cfg.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if len(cfg.ImmutablePrefixes) == 0 {
		t.Fatalf("ImmutablePrefixes default must not be empty")
	}
}

func TestDefaultImmutablePrefixes_FreshSlice(t *testing.T) {
	a := config.DefaultImmutablePrefixes()
	b := config.DefaultImmutablePrefixes()
	a[0] = "mutated"
	if b[0] == "mutated" {
		t.Fatalf("DefaultImmutablePrefixes must return a fresh slice per call")
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithImmutablePrefixes("example.org/frozen"),
		config.WithCopyUnexported(false),
		config.WithMaxUnwrap(3),
	)

	if len(cfg.ImmutablePrefixes) != 1 || cfg.ImmutablePrefixes[0] != "example.org/frozen" {
		t.Fatalf("WithImmutablePrefixes not applied: %v", cfg.ImmutablePrefixes)
	}
	if cfg.CopyUnexported {
		t.Fatalf("WithCopyUnexported(false) not applied")
	}
	if cfg.MaxUnwrap != 3 {
		t.Fatalf("WithMaxUnwrap(3) not applied: %d", cfg.MaxUnwrap)
	}
}

func TestNewConfig_AddedPrefixes(t *testing.T) {
	cfg := config.NewConfig(config.WithAddedImmutablePrefixes("example.org/frozen"))

	if len(cfg.ImmutablePrefixes) != len(config.DefaultImmutablePrefixes())+1 {
		t.Fatalf("WithAddedImmutablePrefixes must extend the defaults: %v", cfg.ImmutablePrefixes)
	}
	last := cfg.ImmutablePrefixes[len(cfg.ImmutablePrefixes)-1]
	if last != "example.org/frozen" {
		t.Fatalf("appended prefix missing: %v", cfg.ImmutablePrefixes)
	}
}

func TestNewConfig_InvalidMaxUnwrap(t *testing.T) {
	cfg := config.NewConfig(config.WithMaxUnwrap(-1))
	if cfg.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("negative MaxUnwrap must reset to default, got %d", cfg.MaxUnwrap)
	}
}
