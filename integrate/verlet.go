// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate implements the velocity-Verlet time-stepping scheme:
// a half-kick/drift pair run before forward comm, and the matching
// half-kick run after reverse comm accumulates the new forces.
package integrate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/M-S-Jacobs2727/jmd/atom"
)

// Verlet holds the fixed timestep used by HalfKick and Drift.
type Verlet struct {
	dt float64
}

// New builds a Verlet integrator with timestep dt, panicking (a
// programming error) if dt is not positive.
func New(dt float64) *Verlet {
	if dt <= 0.0 {
		chk.Panic("integrate: timestep (%v) must be positive", dt)
	}
	return &Verlet{dt: dt}
}

// Timestep returns dt.
func (v *Verlet) Timestep() float64 { return v.dt }

// HalfKick advances every owned atom's velocity by (dt/2)*(F/m). forces
// must have at least store.NumLocal() entries; only the owned prefix is
// touched, since ghosts carry no independent velocity state.
func (v *Verlet) HalfKick(store *atom.Store, forces [][3]float64) {
	half := 0.5 * v.dt
	for i := 0; i < store.NumLocal(); i++ {
		var dv [3]float64
		la.VecAdd(dv[:], half/store.Mass(i), forces[i][:])
		store.IncrementVelocity(i, dv)
	}
}

// Drift advances every owned atom's position by dt*v.
func (v *Verlet) Drift(store *atom.Store) {
	velocities := store.Velocities()
	for i := 0; i < store.NumLocal(); i++ {
		var dx [3]float64
		la.VecAdd(dx[:], v.dt, velocities[i][:])
		store.IncrementPosition(i, dx)
	}
}
