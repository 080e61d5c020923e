// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/nlist"
)

// ljCoeff caches the derived quantities a pair's force and energy
// evaluation actually uses, computed once in SetCoefficient rather than
// per pair per step.
type ljCoeff struct {
	sigma6      float64
	rcut2       float64
	prefactor   float64 // -24*epsilon*sigma6
	epsilon     float64
	energyShift float64 // 2*epsilon*(sigma6/rcut^6)*(sigma6/rcut^6 - 1)
}

func newLJCoeff(sigma, epsilon, rcut float64) ljCoeff {
	sigma6 := sigma * sigma * sigma * sigma * sigma * sigma
	rcut2 := rcut * rcut
	rcut6 := rcut2 * rcut2 * rcut2
	ratio6 := sigma6 / rcut6
	return ljCoeff{
		sigma6:      sigma6,
		rcut2:       rcut2,
		prefactor:   -24.0 * epsilon * sigma6,
		epsilon:     epsilon,
		energyShift: 2.0 * epsilon * ratio6 * (ratio6 - 1.0),
	}
}

// LJCut is the Lennard-Jones 12-6 potential with a hard cutoff and an
// energy shift: every pair inside rcut has 2*epsilon*(sigma/rcut)^6*
// ((sigma/rcut)^6 - 1) subtracted from its energy, which is half of the
// unshifted U(rcut), so a pair exactly at rcut keeps half that value.
type LJCut struct {
	forceCutoff float64
	numTypes    int
	coeffs      []ljCoeff
	coeffSet    []bool
}

// NewLJCut builds an LJCut with the given force cutoff and no registered
// types; SetNumTypes must be called before SetCoefficient.
func NewLJCut(forceCutoff float64) *LJCut {
	if forceCutoff <= 0.0 {
		chk.Panic("potential: force cutoff (%v) must be positive", forceCutoff)
	}
	return &LJCut{forceCutoff: forceCutoff}
}

// CutoffDistance implements Potential.
func (lj *LJCut) CutoffDistance() float64 { return lj.forceCutoff }

// AllCoefficientsSet implements Potential.
func (lj *LJCut) AllCoefficientsSet() bool {
	for _, set := range lj.coeffSet {
		if !set {
			return false
		}
	}
	return true
}

// SetNumTypes implements Potential. Any (i,j) coefficient already set
// whose indices remain below numTypes survives the resize; cells newly
// exposed by growth, or that fall outside the new range on shrink, are
// dropped/marked unset.
func (lj *LJCut) SetNumTypes(numTypes int) {
	if numTypes < 0 {
		chk.Panic("potential: numTypes (%d) must be non-negative", numTypes)
	}
	if numTypes == lj.numTypes {
		return
	}

	type kept struct {
		i, j int
		c    ljCoeff
	}
	var survivors []kept
	for n, set := range lj.coeffSet {
		if !set {
			continue
		}
		i, j := n/lj.numTypes, n%lj.numTypes
		if i < numTypes && j < numTypes {
			survivors = append(survivors, kept{i, j, lj.coeffs[n]})
		}
	}

	lj.coeffs = make([]ljCoeff, numTypes*numTypes)
	lj.coeffSet = make([]bool, numTypes*numTypes)
	for _, s := range survivors {
		idx := s.i*numTypes + s.j
		lj.coeffs[idx] = s.c
		lj.coeffSet[idx] = true
	}
	lj.numTypes = numTypes
}

// SetCoefficient sets the (i,j) pair's sigma/epsilon/rcut, and by symmetry
// (j,i).
func (lj *LJCut) SetCoefficient(i, j int, sigma, epsilon, rcut float64) {
	if i < 0 || i >= lj.numTypes || j < 0 || j >= lj.numTypes {
		chk.Panic("potential: type index (%d,%d) out of range [0,%d)", i, j, lj.numTypes)
	}
	c := newLJCoeff(sigma, epsilon, rcut)
	lj.coeffs[i*lj.numTypes+j] = c
	lj.coeffs[j*lj.numTypes+i] = c
	lj.coeffSet[i*lj.numTypes+j] = true
	lj.coeffSet[j*lj.numTypes+i] = true
}

// ComputeForces implements Potential: F_i += r*f_mag, F_j -= r*f_mag for
// every pair in the half list within the pair's own rcut, with r the
// vector from atom i to atom j, accumulating across every neighbor an
// atom has rather than overwriting.
func (lj *LJCut) ComputeForces(store *atom.Store, nl *nlist.NeighborList) [][3]float64 {
	forces := make([][3]float64, store.NumTotal())
	positions := store.Positions()
	types := store.Types()
	neighbors := nl.Neighbors()

	for i := 0; i < store.NumLocal(); i++ {
		for _, j := range neighbors[i] {
			coeff := lj.coeffs[types[i]*lj.numTypes+types[j]]
			r := [3]float64{
				positions[j][0] - positions[i][0],
				positions[j][1] - positions[i][1],
				positions[j][2] - positions[i][2],
			}
			r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
			if r2 > coeff.rcut2 {
				continue
			}
			r6 := r2 * r2 * r2
			fMag := coeff.prefactor / r6 / r2 * (2.0*coeff.sigma6/r6 - 1.0)
			la.VecAdd(forces[i][:], fMag, r[:])
			la.VecAdd(forces[j][:], -fMag, r[:])
		}
	}
	return forces
}

// ComputePotentialEnergy implements Potential.
func (lj *LJCut) ComputePotentialEnergy(store *atom.Store, nl *nlist.NeighborList) float64 {
	positions := store.Positions()
	types := store.Types()
	neighbors := nl.Neighbors()

	total := 0.0
	for i := 0; i < store.NumLocal(); i++ {
		for _, j := range neighbors[i] {
			coeff := lj.coeffs[types[i]*lj.numTypes+types[j]]
			r := [3]float64{
				positions[i][0] - positions[j][0],
				positions[i][1] - positions[j][1],
				positions[i][2] - positions[j][2],
			}
			r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
			if r2 > coeff.rcut2 {
				continue
			}
			r6 := r2 * r2 * r2
			ratio6 := coeff.sigma6 / r6
			total += 4.0*coeff.epsilon*ratio6*(ratio6-1.0) - coeff.energyShift
		}
	}
	return total
}
