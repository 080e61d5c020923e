// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md

import (
	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/comm"
)

// Run drives numSteps+1 iterations of the state machine in spec.md §4.I.
// Step 0 has no prior forces to half-kick with, so it primes them: forward
// comm, a first neighbor-list build, a force compute, and reverse comm,
// before the step-0 output check. Steps 1..numSteps then run the full
// half-kick/drift/comm/rebuild/force/comm/half-kick sequence against the
// forces left over from the previous step. Signals W2MComplete when done.
func (s *Simulation) Run(numSteps int) {
	s.preCheck()
	s.emitInitialOutput()

	s.dom.ForwardComm(s.atoms, s.neighborList)
	s.buildNeighborList(0)
	s.forces = s.atomicPotential.ComputeForces(s.atoms, s.neighborList)
	s.dom.ReverseComm(s.atoms, s.neighborList, s.forces)
	s.checkDoOutput(0)

	for step := 1; step <= numSteps; step++ {
		s.integrator.HalfKick(s.atoms, s.forces)
		s.integrator.Drift(s.atoms)
		s.dom.ForwardComm(s.atoms, s.neighborList)

		s.checkBuildNeighborList(step)

		s.forces = s.atomicPotential.ComputeForces(s.atoms, s.neighborList)

		s.dom.ReverseComm(s.atoms, s.neighborList, s.forces)

		s.integrator.HalfKick(s.atoms, s.forces)

		s.checkDoOutput(step)
	}

	s.dom.SendToManager(comm.W2M{Kind: comm.W2MComplete})
}

// preCheck asserts that every setting required before stepping is in
// place (spec.md §4.I pre-run assertion).
func (s *Simulation) preCheck() {
	if !s.atomicPotential.AllCoefficientsSet() {
		chk.Panic("md: all potential coefficients must be set before Run")
	}
}

// checkBuildNeighborList rebuilds the neighbor list if it has never been
// built or the list's own update-cadence decides a rebuild is due
// (spec.md §4.I point 4).
func (s *Simulation) checkBuildNeighborList(step int) {
	if s.neighborList.Built() && !s.neighborList.ShouldUpdate(step, s.atoms.Positions()) {
		return
	}
	s.buildNeighborList(step)
}

// buildNeighborList wraps owned atoms across periodic box boundaries,
// exchanges ownership of atoms that crossed a subdomain face, then
// re-bins and re-links the neighbor list over the resulting positions.
func (s *Simulation) buildNeighborList(step int) {
	s.wrapPeriodic()
	s.dom.ExchangeOwnership(s.atoms)
	s.neighborList.Update(s.atoms.Positions(), s.atoms.NumLocal())
	s.neighborList.RecordRebuildStep(step)
}

// wrapPeriodic folds every owned atom's position back into the container
// on each periodic axis, so a departing atom is seen by its true new
// owner during ExchangeOwnership rather than as an out-of-domain outlier.
func (s *Simulation) wrapPeriodic() {
	positions := s.atoms.Positions()
	for i := 0; i < s.atoms.NumLocal(); i++ {
		s.atoms.SetPosition(i, s.container.WrapPoint(positions[i]))
	}
}
