// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package md implements the Simulation driver: the per-worker state
// machine that wires a Container, Atom store, Domain, NeighborList,
// Potential, and Verlet integrator together and steps them forward
// (spec.md §4.I), reporting diagnostics through the compute registry and
// output pipeline to a Manager (spec.md §4.J).
package md

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/compute"
	"github.com/M-S-Jacobs2727/jmd/container"
	"github.com/M-S-Jacobs2727/jmd/domain"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/integrate"
	"github.com/M-S-Jacobs2727/jmd/nlist"
	"github.com/M-S-Jacobs2727/jmd/potential"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

// Simulation is the per-worker owner of every piece of simulation state:
// it holds no shared references with any other worker, and the only
// traffic it exchanges with peers runs through its Domain.
type Simulation struct {
	atoms           *atom.Store
	container       *container.Container
	atomicPotential potential.Potential
	neighborList    *nlist.NeighborList
	dom             *domain.Domain
	computes        *compute.Registry
	integrator      *integrate.Verlet
	output          outputSettings
	forces          [][3]float64
	numGlobal       int
	rng             *rand.Rand
}

// New builds a Simulation with a unit periodic-cube default container
// (spec.md §6 does not mandate defaults for these; the unit cube matches
// `Simulation::new`'s default in simulation.rs) and no atom types,
// potential, or computes configured. SetContainer, SetAtomTypes, and
// SetAtomicPotential may be called before or after Connect (manager.Manager
// connects each Simulation before handing it to the worker function).
// Connect fixes the proc grid and the periodic face wiring from the
// container in place at that moment; a later SetContainer only recomputes
// the subdomain.
func New() *Simulation {
	c := container.New(0, 1, 0, 1, 0, 1, container.Periodic, container.Periodic, container.Periodic)
	lj := potential.NewLJCut(1.0)
	return &Simulation{
		atoms:           atom.NewStore(),
		container:       c,
		atomicPotential: lj,
		neighborList:    nlist.New(c.Rect(), lj.CutoffDistance(), 1.0),
		computes:        compute.NewRegistry(),
		integrator:      integrate.New(1.0),
		rng:             rand.New(rand.NewSource(1)),
	}
}

// Connect performs the Domain registration handshake with the Manager
// over the given channels, fixing this Simulation's place in the proc
// grid for the rest of its lifetime.
func (s *Simulation) Connect(workerIdx, numWorkers int, w2m *queue.Unbounded[comm.W2M], m2w *queue.Unbounded[comm.M2W]) error {
	s.dom = domain.New()
	if err := s.dom.Init(s.container, workerIdx, numWorkers, w2m, m2w); err != nil {
		return err
	}
	s.neighborList.ResetSubdomain(s.dom.Subdomain())
	return nil
}

// Domain returns the worker's spatial-decomposition handle. Connect must
// have run first.
func (s *Simulation) Domain() *domain.Domain { return s.dom }

// AtomicPotential returns the configured potential. Coefficient setting is
// potential-specific (spec.md §4.H keeps it off the common interface), so
// callers type-assert to the concrete type, e.g.
// `sim.AtomicPotential().(*potential.LJCut).SetCoefficient(...)`.
func (s *Simulation) AtomicPotential() potential.Potential { return s.atomicPotential }

// NeighborList returns the current neighbor list.
func (s *Simulation) NeighborList() *nlist.NeighborList { return s.neighborList }

// Atoms returns the worker's atom store.
func (s *Simulation) Atoms() *atom.Store { return s.atoms }

// Container returns the global simulation box.
func (s *Simulation) Container() *container.Container { return s.container }

// Timestep returns the integrator's timestep.
func (s *Simulation) Timestep() float64 { return s.integrator.Timestep() }

// SetContainer replaces the global box. If a Domain is already connected
// its subdomain is recomputed over the new box; the neighbor list is
// rebuilt over the same subdomain with the same force/skin distances.
func (s *Simulation) SetContainer(c *container.Container) {
	s.container = c
	if s.dom != nil {
		s.dom.ResetSubdomain(c)
		s.neighborList.ResetSubdomain(s.dom.Subdomain())
	} else {
		s.neighborList.ResetSubdomain(c.Rect())
	}
}

// SetAtomTypes replaces the type table and tells the potential how many
// types it must carry coefficients for.
func (s *Simulation) SetAtomTypes(types []atom.Type) {
	s.atoms.SetAtomTypes(types)
	s.atomicPotential.SetNumTypes(len(types))
}

// SetAtomicPotential replaces the potential, rebuilding the neighbor
// list's force cutoff if it changed.
func (s *Simulation) SetAtomicPotential(p potential.Potential) {
	if p.CutoffDistance() != s.atomicPotential.CutoffDistance() {
		s.neighborList.SetForceDistance(s.subdomainOrContainer(), p.CutoffDistance())
	}
	p.SetNumTypes(s.atoms.NumTypes())
	s.atomicPotential = p
}

func (s *Simulation) subdomainOrContainer() geom.Rect {
	if s.dom != nil {
		return s.dom.Subdomain()
	}
	return s.container.Rect()
}

// SetTimestep replaces the integrator's timestep.
func (s *Simulation) SetTimestep(dt float64) {
	s.integrator = integrate.New(dt)
}

// SetNLSkinDistance replaces the neighbor list's skin buffer.
func (s *Simulation) SetNLSkinDistance(skin float64) {
	s.neighborList.SetSkinDistance(s.subdomainOrContainer(), skin)
}

// SetNLUpdate replaces the neighbor list's rebuild-check cadence.
func (s *Simulation) SetNLUpdate(every, delay int, check bool) {
	s.neighborList.UpdateSettings = nlist.NewUpdateSettings(every, delay, check)
}

// AddCompute registers a named diagnostic, available thereafter to
// SetOutput.
func (s *Simulation) AddCompute(name string, kind compute.Kind) {
	s.computes.Add(name, kind)
}

// AddAtoms adds owned atoms at the given coordinates, keeping only those
// that fall within this worker's subdomain (spec.md §4.I point "add
// atoms"). Connect must have run first.
func (s *Simulation) AddAtoms(atomType int, coords [][3]float64) []int {
	var mine [][3]float64
	for _, p := range coords {
		if s.dom.Subdomain().Contains(p) {
			mine = append(mine, p)
		}
	}
	return s.atoms.AddAtoms(atomType, mine)
}

// AddRandomAtoms scatters count atoms uniformly at random across rect,
// each worker adding only the share that falls in the intersection of
// rect and its own subdomain. The Manager's Sum collective apportions any
// remainder atom (from floor-rounding each worker's share) to the
// lowest-indexed workers, so the total across all workers is exactly
// count.
func (s *Simulation) AddRandomAtoms(rect geom.Rect, count int, atomType int) []int {
	sub := rect.Intersect(s.dom.Subdomain())
	fraction := rectVolume(sub) / rectVolume(rect)
	myCount := int(fraction * float64(count))

	added := s.dom.Sum(myCount)
	if s.dom.WorkerIdx() < count-added {
		myCount++
	}
	return s.atoms.AddRandomAtoms(sub, s.rng, myCount, atomType)
}

func rectVolume(r geom.Rect) float64 {
	l := r.Lengths()
	return l[0] * l[1] * l[2]
}

// SetTemperature draws a fresh Maxwell-Boltzmann velocity distribution for
// every owned atom (spec.md §4.B); this is process-local and does not
// re-center momentum across workers.
func (s *Simulation) SetTemperature(temperature float64) {
	s.atoms.SetTemperature(temperature, s.rng)
}

// ensureNumGlobal learns the total atom count across every worker, once,
// via the Manager's Sum collective, and caches it for compute.Inputs.
func (s *Simulation) ensureNumGlobal() {
	if s.numGlobal > 0 {
		return
	}
	s.numGlobal = s.dom.Sum(s.atoms.NumLocal())
	if s.numGlobal == 0 {
		chk.Panic("md: simulation has zero atoms across all workers")
	}
}
