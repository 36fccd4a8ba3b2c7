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

package cloner

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/strategy"
)

var (
	// ErrNoStrategy is returned when no strategy in the chain supports a
	// type. With the built-in chain this is unreachable (the struct
	// fallback matches everything); seeing it means the chain was built
	// without a catch-all and must be fixed, not retried.
	ErrNoStrategy = errors.New("dcx(cloner): no strategy for type")
)

// New constructs an apis.Cloner with the built-in strategy chain, with the
// given custom strategies prepended ahead of it. Custom strategies are
// evaluated in the given order and win ties against built-ins for any type
// they claim to support. Nil strategies are ignored.
func New(cfg apis.Config, mk apis.Markers, custom ...apis.Strategy) apis.Cloner {
	chain := make([]apis.Strategy, 0, len(custom)+6)
	for _, s := range custom {
		if s != nil {
			chain = append(chain, s)
		}
	}
	chain = append(chain,
		strategy.NewImmutableStrategy(cfg, mk),
		strategy.NewPointerStrategy(),
		strategy.NewMapStrategy(),
		strategy.NewSliceStrategy(),
		strategy.NewArrayStrategy(),
		strategy.NewStructStrategy(),
	)
	return &engine{cfg: cfg, mk: mk, chain: chain}
}

// NewWithStrategies constructs an apis.Cloner over exactly the given
// chain, without appending the built-ins. The caller owns chain totality:
// a chain without a catch-all surfaces ErrNoStrategy at clone time.
// Nil strategies are ignored.
func NewWithStrategies(cfg apis.Config, mk apis.Markers, strategies ...apis.Strategy) apis.Cloner {
	chain := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			chain = append(chain, s)
		}
	}
	return &engine{cfg: cfg, mk: mk, chain: chain}
}

// engine is an immutable, order-preserving cloner over a strategy chain.
// It holds no per-call state; each DeepClone owns a fresh context.
type engine struct {
	cfg   apis.Config
	mk    apis.Markers
	chain []apis.Strategy
}

// Ensure engine implements apis.Cloner.
var _ apis.Cloner = (*engine)(nil)

// DeepClone is the entry point for one clone operation. It creates a new
// context scoped to this call and delegates to Proceed. Nil input returns
// nil without any strategy lookup; a root whose type is marked Ignore
// also yields nil.
func (e *engine) DeepClone(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	ctx := newContext(e)
	out, err := ctx.Proceed(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	if !out.IsValid() {
		return nil, nil
	}
	return out.Interface(), nil
}

// StrategyFor resolves the first strategy in chain order that supports t.
func (e *engine) StrategyFor(t reflect.Type) (apis.Strategy, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNoStrategy)
	}
	for _, s := range e.chain {
		if s.Supports(t) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoStrategy, t)
}
