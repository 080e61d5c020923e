// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compute implements the built-in scalar diagnostics a Simulation
// can report through its output pipeline: each Kind computes one
// worker's local partial contribution, which the Manager then reduces
// across workers per its Operation tag.
package compute

import (
	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/nlist"
	"github.com/M-S-Jacobs2727/jmd/potential"
)

// Inputs is everything a Kind needs to compute its local partial value.
// NumGlobal is the total atom count across every worker, learned once via
// the Manager's Sum collective (spec.md §4.J) and cached by the caller.
type Inputs struct {
	Store        *atom.Store
	Potential    potential.Potential
	NeighborList *nlist.NeighborList
	NumGlobal    int
}

// Kind is one built-in diagnostic. Value returns this worker's local
// partial; Operation names how the Manager folds every worker's partial
// into the single value it emits.
type Kind interface {
	Value(in Inputs) float64
	Operation() comm.Operation
}

func localVSquaredSum(store *atom.Store) float64 {
	velocities := store.Velocities()
	sum := 0.0
	for i := 0; i < store.NumLocal(); i++ {
		v := velocities[i]
		sum += v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	}
	return sum
}

func localKineticEnergySum(store *atom.Store) float64 {
	velocities := store.Velocities()
	sum := 0.0
	for i := 0; i < store.NumLocal(); i++ {
		v := velocities[i]
		vsq := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
		sum += 0.5 * store.Mass(i) * vsq
	}
	return sum
}

// AverageVSquared reports sum(|v_i|^2)/N_global, pre-divided locally so a
// plain cross-worker Sum yields the global average.
type AverageVSquared struct{}

func (AverageVSquared) Value(in Inputs) float64 {
	return localVSquaredSum(in.Store) / float64(in.NumGlobal)
}
func (AverageVSquared) Operation() comm.Operation { return comm.Sum }

// Temperature reports the equipartition-theorem estimate
// KE_global*(2/3)/N_global, built the same way: each worker pre-scales
// its local kinetic energy partial so a plain cross-worker Sum yields the
// final value directly.
type Temperature struct{}

func (Temperature) Value(in Inputs) float64 {
	return localKineticEnergySum(in.Store) * (2.0 / 3.0) / float64(in.NumGlobal)
}
func (Temperature) Operation() comm.Operation { return comm.Sum }

// KineticEnergy reports the global total kinetic energy: each worker's
// local partial sums directly, with no normalization.
type KineticEnergy struct{}

func (KineticEnergy) Value(in Inputs) float64 { return localKineticEnergySum(in.Store) }
func (KineticEnergy) Operation() comm.Operation { return comm.Sum }

// PotentialEnergy reports the global total potential energy: the
// half-list decomposition already makes each worker's
// ComputePotentialEnergy a disjoint partial of the global total.
type PotentialEnergy struct{}

func (PotentialEnergy) Value(in Inputs) float64 {
	return in.Potential.ComputePotentialEnergy(in.Store, in.NeighborList)
}
func (PotentialEnergy) Operation() comm.Operation { return comm.Sum }

// TotalEnergy reports the global total kinetic plus potential energy.
type TotalEnergy struct{}

func (TotalEnergy) Value(in Inputs) float64 {
	return KineticEnergy{}.Value(in) + PotentialEnergy{}.Value(in)
}
func (TotalEnergy) Operation() comm.Operation { return comm.Sum }
