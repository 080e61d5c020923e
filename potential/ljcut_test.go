// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/nlist"
)

func twoAtomFixture(sep float64) (*atom.Store, *nlist.NeighborList) {
	store := atom.NewStore()
	store.SetAtomTypes([]atom.Type{atom.NewType(1.0)})
	store.AddAtoms(0, [][3]float64{{0, 0, 0}, {sep, 0, 0}})

	subdomain := geom.NewRect(-5, 5, -5, 5, -5, 5)
	nl := nlist.New(subdomain, 2.5, 0.5)
	nl.Update(store.Positions(), store.NumLocal())
	return store, nl
}

func Test_ljcut01_forceMagnitude(tst *testing.T) {

	chk.PrintTitle("ljcut01. force magnitude and Newton's third law at r=sigma")

	store, nl := twoAtomFixture(1.0)
	lj := NewLJCut(2.5)
	lj.SetNumTypes(1)
	lj.SetCoefficient(0, 0, 1.0, 1.0, 2.5)

	forces := lj.ComputeForces(store, nl)
	chk.IntAssert(len(forces), 2)

	// sigma=epsilon=1, r=1: sigma6=1, r6=1, r2=1.
	// f_mag = (-24*1*1/1/1) * (2*1/1 - 1) = -24.
	wantFMag := -24.0
	wantF0 := [3]float64{1.0 * wantFMag, 0, 0}

	// whichever atom the stencil assigns as i, the pair contributes
	// +r*f_mag to one side and -r*f_mag to the other, with r = pos[j]-pos[i];
	// the two forces must be exact negatives of each other regardless.
	chk.Vector(tst, "Newton's third law", 1e-12, []float64{forces[0][0] + forces[1][0], forces[0][1] + forces[1][1], forces[0][2] + forces[1][2]}, []float64{0, 0, 0})

	// the magnitude of the force on either atom must match |wantF0|.
	mag0 := forces[0][0]
	if mag0 < 0 {
		mag0 = -mag0
	}
	chk.Scalar(tst, "force magnitude", 1e-9, mag0, -wantF0[0])
}

func Test_ljcut02_cutoffExcludesFarPair(tst *testing.T) {

	chk.PrintTitle("ljcut02. a pair beyond rcut but still within the neighbor list contributes nothing")

	store, nl := twoAtomFixture(2.8) // within neighborDistance (3.0) but beyond rcut (2.5)
	lj := NewLJCut(2.5)
	lj.SetNumTypes(1)
	lj.SetCoefficient(0, 0, 1.0, 1.0, 2.5)

	forces := lj.ComputeForces(store, nl)
	chk.Vector(tst, "force atom0", 1e-15, forces[0][:], []float64{0, 0, 0})
	chk.Vector(tst, "force atom1", 1e-15, forces[1][:], []float64{0, 0, 0})
	chk.Scalar(tst, "potential energy", 1e-15, lj.ComputePotentialEnergy(store, nl), 0)
}

func Test_ljcut03_energyShiftHalvesEnergyAtCutoff(tst *testing.T) {

	chk.PrintTitle("ljcut03. a pair sitting exactly at rcut keeps half its unshifted energy")

	store, nl := twoAtomFixture(2.5)
	lj := NewLJCut(2.5)
	lj.SetNumTypes(1)
	lj.SetCoefficient(0, 0, 1.0, 1.0, 2.5)

	// sigma=epsilon=1, r=rcut=2.5: with ratio6 = 1/2.5^6 the unshifted
	// energy is 4*ratio6*(ratio6-1) and the shift is 2*ratio6*(ratio6-1).
	ratio6 := 1.0 / (2.5 * 2.5 * 2.5 * 2.5 * 2.5 * 2.5)
	pe := lj.ComputePotentialEnergy(store, nl)
	chk.Scalar(tst, "potential energy at rcut", 1e-12, pe, 2.0*ratio6*(ratio6-1.0))
}

func Test_ljcut04_setNumTypesPreservesInRangeCoefficients(tst *testing.T) {

	chk.PrintTitle("ljcut04. growing and shrinking the type count preserves surviving cells")

	lj := NewLJCut(2.5)
	lj.SetNumTypes(2)
	lj.SetCoefficient(0, 0, 1.0, 1.0, 2.5)
	lj.SetCoefficient(0, 1, 2.0, 1.0, 2.5)
	lj.SetCoefficient(1, 1, 3.0, 1.0, 2.5)
	if !lj.AllCoefficientsSet() {
		tst.Fatalf("expected all 2x2 cells set")
	}

	// grow to 3 types: (0,0),(0,1),(1,0),(1,1) survive; the new row/column
	// for type 2 is unset.
	lj.SetNumTypes(3)
	if lj.AllCoefficientsSet() {
		tst.Errorf("growing should expose unset cells for the new type")
	}
	chk.IntAssert(len(lj.coeffSet), 9)
	if !lj.coeffSet[0*3+0] || !lj.coeffSet[0*3+1] || !lj.coeffSet[1*3+0] || !lj.coeffSet[1*3+1] {
		tst.Errorf("surviving cells should remain set after growth")
	}

	lj.SetCoefficient(0, 2, 1.0, 1.0, 2.5)
	lj.SetCoefficient(1, 2, 1.0, 1.0, 2.5)
	lj.SetCoefficient(2, 2, 1.0, 1.0, 2.5)
	if !lj.AllCoefficientsSet() {
		tst.Fatalf("expected all 3x3 cells set after filling in")
	}

	// shrink back to 1 type: only (0,0) survives.
	lj.SetNumTypes(1)
	if !lj.AllCoefficientsSet() {
		tst.Errorf("shrinking to a fully-covered subrange should still read as all set")
	}
}
