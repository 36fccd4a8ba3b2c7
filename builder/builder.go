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

package builder

import (
	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/cloner"
	"dirpx.dev/dcx/markers"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildMarkers builds and returns a new apis.Markers based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its entries are copied into the new registry.
func (b *builder) BuildMarkers(cfg apis.Config, prev apis.Markers, _ any) apis.Markers {
	nmk := markers.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			if e.Field == "" {
				_ = nmk.MarkType(e.Type, e.Marker)
				continue
			}
			_ = nmk.MarkField(e.Type, e.Field, e.Marker)
		}
	}
	return nmk
}

// BuildCloner builds and returns a new apis.Cloner based on the provided
// configuration and marker registry. An ext of type []apis.Strategy is
// interpreted as custom strategies to prepend ahead of the built-in chain;
// any other ext is ignored by this builder.
func (b *builder) BuildCloner(cfg apis.Config, mk apis.Markers, _ apis.Cloner, ext any) apis.Cloner {
	custom, _ := ext.([]apis.Strategy)
	return cloner.New(cfg, mk, custom...)
}
