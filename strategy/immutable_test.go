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

package strategy_test

import (
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/config"
	"dirpx.dev/dcx/markers"
	"dirpx.dev/dcx/strategy"
)

// Local test types.
type color int

type frozen struct{ V string }

type mutable struct{ V string }

func newImmutable(t *testing.T) (apis.Strategy, apis.Markers) {
	t.Helper()
	cfg := config.DefaultConfig()
	mk := markers.New(cfg)
	return strategy.NewImmutableStrategy(cfg, mk), mk
}

func TestImmutableStrategy_Supports(t *testing.T) {
	s, _ := newImmutable(t)

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"string", "hello", true},
		{"int", 42, true},
		{"bool", true, true},
		{"float", 3.14, true},
		{"named enum", color(1), true},
		{"duration", time.Second, true},
		{"time.Time by prefix", time.Now(), true},
		{"*time.Time by prefix", &time.Time{}, true},
		{"big.Int by prefix", big.NewInt(10), true},
		{"uuid by prefix", uuid.New(), true},
		{"chan", make(chan int), true},
		{"func", func() {}, true},
		{"plain struct", mutable{}, false},
		{"ptr to struct", &mutable{}, false},
		{"map", map[string]int{}, false},
		{"slice", []int{}, false},
		{"array", [2]int{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Supports(reflect.TypeOf(tc.val)))
		})
	}
}

func TestImmutableStrategy_CopyReturnsSameReference(t *testing.T) {
	s, _ := newImmutable(t)

	n := big.NewInt(999)
	out, err := s.Copy(reflect.ValueOf(n), nil)
	require.NoError(t, err)
	assert.Same(t, n, out.Interface())

	id := uuid.New()
	out, err = s.Copy(reflect.ValueOf(id), nil)
	require.NoError(t, err)
	assert.Equal(t, id, out.Interface())
}

func TestImmutableStrategy_MarkerOverride(t *testing.T) {
	s, mk := newImmutable(t)

	require.False(t, s.Supports(reflect.TypeOf(frozen{})))

	require.NoError(t, mk.MarkType(reflect.TypeOf(frozen{}), apis.Immutable))
	assert.True(t, s.Supports(reflect.TypeOf(frozen{})),
		"marker-immutable type must be supported")
	assert.True(t, s.Supports(reflect.TypeOf(&frozen{})),
		"pointer to marker-immutable type must be supported")
	assert.False(t, s.Supports(reflect.TypeOf(mutable{})),
		"unmarked sibling type must stay unsupported")
}

func TestImmutableStrategy_CustomPrefixes(t *testing.T) {
	cfg := config.NewConfig(config.WithImmutablePrefixes("math/big"))
	s := strategy.NewImmutableStrategy(cfg, markers.New(cfg))

	assert.True(t, s.Supports(reflect.TypeOf(big.Int{})))
	assert.False(t, s.Supports(reflect.TypeOf(time.Time{})),
		"time must not match once the default prefixes are replaced")
}

func TestImmutableStrategy_NilType(t *testing.T) {
	s, _ := newImmutable(t)
	assert.False(t, s.Supports(nil))
}
