// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jmd runs a Lennard-Jones molecular-dynamics simulation over a
// periodic cubic box, domain-decomposed across a configurable number of
// worker goroutines (spec.md §4.J), printing a tab-separated diagnostics
// table to stdout.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/compute"
	"github.com/M-S-Jacobs2727/jmd/container"
	"github.com/M-S-Jacobs2727/jmd/manager"
	"github.com/M-S-Jacobs2727/jmd/md"
	"github.com/M-S-Jacobs2727/jmd/potential"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	numWorkers := io.ArgToInt(0, 2)
	nPerSide := io.ArgToInt(1, 6)
	boxLength := io.ArgToFloat(2, 10.0)
	temperature := io.ArgToFloat(3, 1.0)
	timestep := io.ArgToFloat(4, 0.001)
	numSteps := io.ArgToInt(5, 200)
	outputEvery := io.ArgToInt(6, 10)
	verbose := io.ArgToBool(7, true)

	if verbose {
		io.PfWhite("\njmd -- Go Molecular Dynamics\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"number of worker goroutines", "numWorkers", numWorkers,
			"lattice points per side", "nPerSide", nPerSide,
			"periodic box length", "boxLength", boxLength,
			"initial temperature", "temperature", temperature,
			"integration timestep", "timestep", timestep,
			"number of steps", "numSteps", numSteps,
			"output interval", "outputEvery", outputEvery,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// global container and starting lattice, known to every worker before
	// any Domain handshake runs
	box := container.New(0, boxLength, 0, boxLength, 0, boxLength,
		container.Periodic, container.Periodic, container.Periodic)
	lattice := cubicLattice(nPerSide, boxLength)

	worker := func(sim *md.Simulation) {
		sim.SetContainer(box)
		sim.SetAtomTypes([]atom.Type{atom.NewType(1.0)})

		lj := potential.NewLJCut(2.5)
		lj.SetNumTypes(1)
		lj.SetCoefficient(0, 0, 1.0, 1.0, 2.5)
		sim.SetAtomicPotential(lj)

		sim.SetTimestep(timestep)
		sim.SetNLSkinDistance(0.3)
		sim.SetNLUpdate(1, 0, true)

		sim.AddAtoms(0, lattice)
		sim.SetTemperature(temperature)

		sim.AddCompute("temp", compute.Temperature{})
		sim.AddCompute("ke", compute.KineticEnergy{})
		sim.AddCompute("pe", compute.PotentialEnergy{})
		sim.AddCompute("etotal", compute.TotalEnergy{})
		sim.SetOutput(outputEvery, []string{"step", "temp", "ke", "pe", "etotal"})

		sim.Run(numSteps)
	}

	manager.New().Run(numWorkers, worker)
}

// cubicLattice lays nPerSide^3 points on a simple cubic lattice spanning
// [0,boxLength) on every axis.
func cubicLattice(nPerSide int, boxLength float64) [][3]float64 {
	if nPerSide < 1 {
		chk.Panic("jmd: nPerSide (%d) must be positive", nPerSide)
	}
	spacing := boxLength / float64(nPerSide)
	points := make([][3]float64, 0, nPerSide*nPerSide*nPerSide)
	for i := 0; i < nPerSide; i++ {
		for j := 0; j < nPerSide; j++ {
			for k := 0; k < nPerSide; k++ {
				points = append(points, [3]float64{
					float64(i) * spacing,
					float64(j) * spacing,
					float64(k) * spacing,
				})
			}
		}
	}
	return points
}
