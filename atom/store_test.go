// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/geom"
)

func newTestStore() *Store {
	s := NewStore()
	s.SetAtomTypes([]Type{NewType(1.0), NewType(2.0)})
	return s
}

func Test_store01(tst *testing.T) {

	chk.PrintTitle("store01. dense id assignment")

	s := newTestStore()
	ids1 := s.AddAtoms(0, [][3]float64{{0, 0, 0}, {1, 1, 1}})
	if ids1[0] != 0 || ids1[1] != 1 {
		tst.Errorf("first batch should get ids 0,1: got %v", ids1)
	}
	ids2 := s.AddAtoms(1, [][3]float64{{2, 2, 2}})
	if ids2[0] != 2 {
		tst.Errorf("second batch should continue from max+1: got %v", ids2)
	}
	chk.IntAssert(s.NumLocal(), 3)
	chk.IntAssert(s.NumTotal(), 3)
	chk.IntAssert(s.NumGhost(), 0)
}

func Test_store02(tst *testing.T) {

	chk.PrintTitle("store02. mass lookup through the type table")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}})
	s.AddAtoms(1, [][3]float64{{1, 1, 1}})
	chk.Scalar(tst, "mass(0)", 1e-15, s.Mass(0), 1.0)
	chk.Scalar(tst, "mass(1)", 1e-15, s.Mass(1), 2.0)
}

func Test_store03(tst *testing.T) {

	chk.PrintTitle("store03. remove by indices decrements nlocal correctly")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}})
	s.Upsert(100, 0, [3]float64{9, 9, 9}, [3]float64{})
	chk.IntAssert(s.NumTotal(), 4)
	chk.IntAssert(s.NumGhost(), 1)

	s.RemoveByIndices([]int{0})
	chk.IntAssert(s.NumLocal(), 2)
	chk.IntAssert(s.NumTotal(), 3)

	// removing only a ghost index must not touch nlocal
	ghostIdx := s.IdToIdx(100)
	s.RemoveByIndices([]int{ghostIdx})
	chk.IntAssert(s.NumLocal(), 2)
	chk.IntAssert(s.NumGhost(), 0)
}

func Test_store04(tst *testing.T) {

	chk.PrintTitle("store04. upsert replaces by id, appends as ghost otherwise")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}})
	s.Upsert(0, 0, [3]float64{5, 5, 5}, [3]float64{1, 0, 0})
	chk.IntAssert(s.NumTotal(), 1)
	chk.Vector(tst, "pos replaced in place", 1e-15, s.Positions()[0][:], []float64{5, 5, 5})

	s.Upsert(42, 0, [3]float64{-1, -1, -1}, [3]float64{})
	chk.IntAssert(s.NumTotal(), 2)
	chk.IntAssert(s.NumGhost(), 1)
}

func Test_store05(tst *testing.T) {

	chk.PrintTitle("store05. add_random_atoms lands within the region")

	s := newTestStore()
	region := geom.NewRect(0, 10, 0, 10, 0, 10)
	rng := rand.New(rand.NewSource(7))
	s.AddRandomAtoms(region, rng, 50, 0)
	chk.IntAssert(s.NumLocal(), 50)
	for _, p := range s.Positions() {
		if !region.Contains(p) {
			tst.Errorf("random atom position %v should be contained in %v", p, region)
		}
	}
}

func Test_store06(tst *testing.T) {

	chk.PrintTitle("store06. set_temperature samples nonzero velocities")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
	rng := rand.New(rand.NewSource(11))
	s.SetTemperature(2.0, rng)
	allZero := true
	for _, v := range s.Velocities() {
		if v != [3]float64{0, 0, 0} {
			allZero = false
		}
	}
	if allZero {
		tst.Errorf("set_temperature should have assigned nonzero velocities")
	}
}

func Test_store07(tst *testing.T) {

	chk.PrintTitle("store07. resize_ghost_region grows and truncates")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}})
	s.ResizeGhostRegion(4)
	chk.IntAssert(s.NumTotal(), 4)
	chk.IntAssert(s.NumGhost(), 3)

	s.ResizeGhostRegion(1)
	chk.IntAssert(s.NumTotal(), 1)
	chk.IntAssert(s.NumGhost(), 0)
}

func Test_store08(tst *testing.T) {

	chk.PrintTitle("store08. insert_owned preserves id and grows nlocal")

	s := newTestStore()
	s.AddAtoms(0, [][3]float64{{0, 0, 0}, {1, 1, 1}})
	s.Upsert(50, 0, [3]float64{9, 9, 9}, [3]float64{})

	s.InsertOwned(7, 1, [3]float64{3, 3, 3}, [3]float64{0, 1, 0})
	chk.IntAssert(s.NumLocal(), 3)
	chk.IntAssert(s.NumTotal(), 4)
	idx := s.IdToIdx(7)
	if idx < 0 || idx >= s.NumLocal() {
		tst.Errorf("migrated atom 7 should land in the owned prefix: idx=%d, nlocal=%d", idx, s.NumLocal())
	}
	chk.Vector(tst, "migrated position", 1e-15, s.Positions()[idx][:], []float64{3, 3, 3})

	// migrating an id already known as a ghost must not duplicate it.
	s.InsertOwned(50, 0, [3]float64{9, 9, 9}, [3]float64{})
	chk.IntAssert(s.NumTotal(), 4)
	chk.IntAssert(s.NumGhost(), 0)
}
