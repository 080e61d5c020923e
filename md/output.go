// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md

import (
	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/compute"
)

// outputSpec names one column of the output row: either the current step
// number or a registered compute.
type outputSpec struct {
	isStep bool
	name   string
	kind   compute.Kind
}

// outputSettings is the configuration set by SetOutput.
type outputSettings struct {
	every int
	specs []outputSpec
}

// SetOutput configures which columns to emit and how often. Each name in
// columns is either "step" or the name of a compute previously registered
// via AddCompute. Sends the outgoing column list to the Manager so it can
// adopt the header (spec.md §4.J); the first worker to reach this call
// fixes the Manager's header for the run.
func (s *Simulation) SetOutput(every int, columns []string) {
	if every < 1 {
		chk.Panic("md: output.every (%d) must be at least 1", every)
	}
	specs := make([]outputSpec, len(columns))
	for i, name := range columns {
		if name == "step" {
			specs[i] = outputSpec{isStep: true, name: name}
			continue
		}
		kind, ok := s.computes.Get(name)
		if !ok {
			chk.Panic("md: output column %q is not \"step\" and no compute is registered under that name", name)
		}
		specs[i] = outputSpec{name: name, kind: kind}
	}
	s.output = outputSettings{every: every, specs: specs}

	s.dom.SendToManager(comm.W2M{Kind: comm.W2MSetupOutput, OutputColumns: columns})
}

// emitInitialOutput asks the Manager to print the output header. Sent
// once per Run, before the step loop begins.
func (s *Simulation) emitInitialOutput() {
	if len(s.output.specs) == 0 {
		return
	}
	s.dom.SendToManager(comm.W2M{Kind: comm.W2MInitialOutput})
}

// checkDoOutput evaluates and ships every configured output value if step
// is a multiple of output.every (spec.md §4.I point 10).
func (s *Simulation) checkDoOutput(step int) {
	if len(s.output.specs) == 0 {
		return
	}
	if step%s.output.every != 0 {
		return
	}
	s.ensureNumGlobal()
	in := compute.Inputs{
		Store:        s.atoms,
		Potential:    s.atomicPotential,
		NeighborList: s.neighborList,
		NumGlobal:    s.numGlobal,
	}
	for _, spec := range s.output.specs {
		if spec.isStep {
			s.dom.SendToManager(comm.W2M{Kind: comm.W2MOutput, Column: spec.name, Value: float64(step), Op: comm.First})
			continue
		}
		s.dom.SendToManager(comm.W2M{
			Kind:   comm.W2MOutput,
			Column: spec.name,
			Value:  spec.kind.Value(in),
			Op:     spec.kind.Operation(),
		})
	}
}
