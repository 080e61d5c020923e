// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potential implements the pairwise force laws the force-compute
// phase of a step invokes over the current neighbor list.
package potential

import (
	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/nlist"
)

// Potential is the interface the force-compute phase drives. Per-pair
// coefficients are potential-specific and are set on the concrete type
// (e.g. *LJCut.SetCoefficient) before it is stored behind this interface.
type Potential interface {
	// CutoffDistance is the force cutoff; the neighbor list's skin buffer
	// is added on top of this externally, not here.
	CutoffDistance() float64

	// AllCoefficientsSet reports whether every (i,j) pair up to the
	// current type count has a coefficient assigned.
	AllCoefficientsSet() bool

	// SetNumTypes grows or shrinks the NxN coefficient matrix, preserving
	// any previously set cell whose type indices remain in range.
	SetNumTypes(numTypes int)

	// ComputeForces returns one force vector per atom (owned and ghost),
	// length store.NumTotal().
	ComputeForces(store *atom.Store, nl *nlist.NeighborList) [][3]float64

	// ComputePotentialEnergy returns the total potential energy summed
	// over the owned atoms' half neighbor list.
	ComputePotentialEnergy(store *atom.Store, nl *nlist.NeighborList) float64
}
