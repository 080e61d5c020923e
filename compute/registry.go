// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import "github.com/cpmech/gosl/chk"

// entry pairs a registered name with its Kind, kept in insertion order so
// the output column order matches the order computes were added in.
type entry struct {
	name string
	kind Kind
}

// Registry is the worker-local named lookup table of computes a
// Simulation has configured via AddCompute. A linear scan is adequate:
// the table holds at most a handful of entries.
type Registry struct {
	entries []entry
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers kind under name, panicking if name is already taken.
func (r *Registry) Add(name string, kind Kind) {
	if _, ok := r.Get(name); ok {
		chk.Panic("compute: name %q already registered", name)
	}
	r.entries = append(r.entries, entry{name: name, kind: kind})
}

// Get looks up a registered Kind by name.
func (r *Registry) Get(name string) (Kind, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.kind, true
		}
	}
	return nil, false
}

// Names returns every registered name, in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}
