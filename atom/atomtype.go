// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atom holds the structure-of-arrays atom store: the per-atom
// identity, type, position, and velocity records a worker owns plus the
// ghost records it has received from its neighbors.
package atom

import "github.com/cpmech/gosl/chk"

// Type is a single atom species: for the CORE, just a mass.
type Type struct {
	Mass float64
}

// NewType builds a Type, panicking if mass is not positive.
func NewType(mass float64) Type {
	if mass <= 0.0 {
		chk.Panic("atom: mass (%v) must be positive", mass)
	}
	return Type{Mass: mass}
}
