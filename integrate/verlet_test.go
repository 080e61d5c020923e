// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/atom"
)

func Test_verlet01_halfKick(tst *testing.T) {

	chk.PrintTitle("verlet01. half-kick scales force by dt/2/mass")

	store := atom.NewStore()
	store.SetAtomTypes([]atom.Type{atom.NewType(2.0)})
	store.AddAtoms(0, [][3]float64{{0, 0, 0}})

	v := New(0.1)
	forces := [][3]float64{{4, 0, -2}}
	v.HalfKick(store, forces)

	// dv = 0.5*0.1*F/m = 0.05*F/2 = 0.025*F
	want := []float64{0.025 * 4, 0, 0.025 * -2}
	chk.Vector(tst, "velocity after half-kick", 1e-15, store.Velocities()[0][:], want)
}

func Test_verlet02_drift(tst *testing.T) {

	chk.PrintTitle("verlet02. drift advances position by dt*v")

	store := atom.NewStore()
	store.SetAtomTypes([]atom.Type{atom.NewType(1.0)})
	store.AddAtoms(0, [][3]float64{{1, 1, 1}})
	store.SetVelocity(0, [3]float64{2, -1, 0})

	v := New(0.5)
	v.Drift(store)

	chk.Vector(tst, "position after drift", 1e-15, store.Positions()[0][:], []float64{1 + 0.5*2, 1 + 0.5*-1, 1})
}

func Test_verlet03_ghostsUntouched(tst *testing.T) {

	chk.PrintTitle("verlet03. half-kick and drift leave ghost atoms untouched")

	store := atom.NewStore()
	store.SetAtomTypes([]atom.Type{atom.NewType(1.0)})
	store.AddAtoms(0, [][3]float64{{0, 0, 0}})
	store.Upsert(99, 0, [3]float64{5, 5, 5}, [3]float64{1, 1, 1})

	v := New(0.1)
	forces := [][3]float64{{10, 10, 10}, {10, 10, 10}}
	v.HalfKick(store, forces)
	v.Drift(store)

	chk.Vector(tst, "ghost position unchanged", 1e-15, store.Positions()[1][:], []float64{5, 5, 5})
	chk.Vector(tst, "ghost velocity unchanged", 1e-15, store.Velocities()[1][:], []float64{1, 1, 1})
}
