// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/M-S-Jacobs2727/jmd/geom"
)

// Store is the structure-of-arrays record of every atom a worker knows
// about: its owned atoms in [0,nlocal) followed by ghost atoms received
// from neighboring workers in [nlocal,ntotal).
type Store struct {
	ids        []int
	types      []int
	positions  [][3]float64
	velocities [][3]float64
	atomTypes  []Type
	nlocal     int
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{}
}

// NumLocal returns the number of owned atoms.
func (s *Store) NumLocal() int { return s.nlocal }

// NumGhost returns the number of ghost atoms currently known.
func (s *Store) NumGhost() int { return len(s.ids) - s.nlocal }

// NumTotal returns the number of owned plus ghost atoms.
func (s *Store) NumTotal() int { return len(s.ids) }

// Ids returns the id of every atom, owned then ghost.
func (s *Store) Ids() []int { return s.ids }

// Types returns the type index of every atom.
func (s *Store) Types() []int { return s.types }

// Positions returns the position of every atom.
func (s *Store) Positions() [][3]float64 { return s.positions }

// Velocities returns the velocity of every atom.
func (s *Store) Velocities() [][3]float64 { return s.velocities }

// AtomTypes returns the type table.
func (s *Store) AtomTypes() []Type { return s.atomTypes }

// NumTypes returns the number of registered atom types.
func (s *Store) NumTypes() int { return len(s.atomTypes) }

// SetAtomTypes replaces the type table wholesale.
func (s *Store) SetAtomTypes(types []Type) { s.atomTypes = types }

// Mass returns the mass of the atom at index i, looked up through the type
// table.
func (s *Store) Mass(i int) float64 {
	return s.atomTypes[s.types[i]].Mass
}

// IdToIdx returns the index of the given atom id among the currently known
// atoms, or -1 if it is not known.
func (s *Store) IdToIdx(id int) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() int {
	max := -1
	for _, id := range s.ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// AddAtoms appends num=len(coords) owned atoms of the given type at the
// given coordinates, assigning each a dense id starting from
// max(existing ids)+1 (or 0 if the store is empty). Returns the assigned
// ids in the same order as coords.
func (s *Store) AddAtoms(atomType int, coords [][3]float64) []int {
	if atomType < 0 || atomType >= len(s.atomTypes) {
		chk.Panic("atom: type index %d out of range [0,%d)", atomType, len(s.atomTypes))
	}
	first := s.nextID()
	ids := make([]int, len(coords))

	// Owned atoms must occupy a contiguous prefix; insert before any
	// existing ghosts rather than simply appending.
	insertAt := s.nlocal
	for i, p := range coords {
		id := first + i
		ids[i] = id
		s.ids = insertAtIdx(s.ids, insertAt+i, id)
		s.types = insertAtIdx(s.types, insertAt+i, atomType)
		s.positions = insertAtIdxV(s.positions, insertAt+i, p)
		s.velocities = insertAtIdxV(s.velocities, insertAt+i, [3]float64{0, 0, 0})
	}
	s.nlocal += len(coords)
	return ids
}

// AddRandomAtoms appends count owned atoms of the given type, each placed
// at a uniformly random coordinate within region, sampled from rng.
func (s *Store) AddRandomAtoms(region geom.Rect, rng *rand.Rand, count int, atomType int) []int {
	coords := make([][3]float64, count)
	for i := range coords {
		coords[i] = region.GetRandomCoord(rng)
	}
	return s.AddAtoms(atomType, coords)
}

// SetTemperature draws each owned atom's velocity components independently
// from a normal distribution with mean 0 and standard deviation sqrt(T),
// then divides by sqrt(mass). This is the only randomized operation in the
// CORE and is entirely process-local: it does not re-center momentum
// across workers.
func (s *Store) SetTemperature(temperature float64, rng *rand.Rand) {
	if temperature < 0.0 {
		chk.Panic("atom: temperature (%v) must be non-negative", temperature)
	}
	dist := distuv.Normal{Mu: 0, Sigma: math.Sqrt(temperature), Src: rng}
	for i := 0; i < s.nlocal; i++ {
		sqrtMass := math.Sqrt(s.Mass(i))
		s.velocities[i] = [3]float64{
			dist.Rand() / sqrtMass,
			dist.Rand() / sqrtMass,
			dist.Rand() / sqrtMass,
		}
	}
}

// IncrementPosition adds increment to the position of the atom at index i.
func (s *Store) IncrementPosition(i int, increment [3]float64) {
	la.VecAdd(s.positions[i][:], 1, increment[:])
}

// IncrementVelocity adds increment to the velocity of the atom at index i.
func (s *Store) IncrementVelocity(i int, increment [3]float64) {
	la.VecAdd(s.velocities[i][:], 1, increment[:])
}

// SetVelocity overwrites the velocity of the atom at index i.
func (s *Store) SetVelocity(i int, v [3]float64) {
	s.velocities[i] = v
}

// SetPosition overwrites the position of the atom at index i.
func (s *Store) SetPosition(i int, p [3]float64) {
	s.positions[i] = p
}

// RemoveByIndices deletes the atoms at the given indices (owned or ghost).
// nlocal is decremented by the number of removed indices strictly less
// than nlocal, since only owned atoms count against it.
func (s *Store) RemoveByIndices(idxs []int) {
	remove := make(map[int]bool, len(idxs))
	removedLocal := 0
	for _, i := range idxs {
		if i < 0 || i >= len(s.ids) {
			chk.Panic("atom: remove index %d out of range [0,%d)", i, len(s.ids))
		}
		if !remove[i] {
			remove[i] = true
			if i < s.nlocal {
				removedLocal++
			}
		}
	}
	s.ids = filterOutInts(s.ids, remove)
	s.types = filterOutInts(s.types, remove)
	s.positions = filterOutVecs(s.positions, remove)
	s.velocities = filterOutVecs(s.velocities, remove)
	s.nlocal -= removedLocal
}

// ResizeGhostRegion truncates or grows the ghost region so that the store
// holds exactly newNtotal atoms in total. Growing appends zeroed ghost
// records; these are expected to be immediately overwritten by Upsert.
// newNtotal must not be less than nlocal.
func (s *Store) ResizeGhostRegion(newNtotal int) {
	if newNtotal < s.nlocal {
		chk.Panic("atom: cannot resize to %d atoms with %d owned", newNtotal, s.nlocal)
	}
	switch {
	case newNtotal < len(s.ids):
		s.ids = s.ids[:newNtotal]
		s.types = s.types[:newNtotal]
		s.positions = s.positions[:newNtotal]
		s.velocities = s.velocities[:newNtotal]
	case newNtotal > len(s.ids):
		grow := newNtotal - len(s.ids)
		for i := 0; i < grow; i++ {
			s.ids = append(s.ids, -1)
			s.types = append(s.types, 0)
			s.positions = append(s.positions, [3]float64{})
			s.velocities = append(s.velocities, [3]float64{})
		}
	}
}

// Upsert replaces the record for id if already known (owned or ghost), or
// appends it as a new ghost atom otherwise.
func (s *Store) Upsert(id, atomType int, pos, vel [3]float64) {
	if i := s.IdToIdx(id); i >= 0 {
		s.types[i] = atomType
		s.positions[i] = pos
		s.velocities[i] = vel
		return
	}
	s.ids = append(s.ids, id)
	s.types = append(s.types, atomType)
	s.positions = append(s.positions, pos)
	s.velocities = append(s.velocities, vel)
}

// InsertOwned adds a single atom as OWNED, preserving its given id rather
// than assigning a fresh one. Used when an atom migrates in during
// ownership exchange: it is inserted at the end of the contiguous owned
// prefix, ahead of any existing ghosts, and nlocal is incremented. If id
// is already known (e.g. present as a ghost from a prior forward-comm
// pass), that record is removed first so it is not duplicated.
func (s *Store) InsertOwned(id, atomType int, pos, vel [3]float64) {
	if i := s.IdToIdx(id); i >= 0 {
		s.RemoveByIndices([]int{i})
	}
	insertAt := s.nlocal
	s.ids = insertAtIdx(s.ids, insertAt, id)
	s.types = insertAtIdx(s.types, insertAt, atomType)
	s.positions = insertAtIdxV(s.positions, insertAt, pos)
	s.velocities = insertAtIdxV(s.velocities, insertAt, vel)
	s.nlocal++
}

// TruncateGhosts drops every ghost atom, keeping only [0,nlocal).
func (s *Store) TruncateGhosts() {
	s.ids = s.ids[:s.nlocal]
	s.types = s.types[:s.nlocal]
	s.positions = s.positions[:s.nlocal]
	s.velocities = s.velocities[:s.nlocal]
}

func insertAtIdx(s []int, at, v int) []int {
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

func insertAtIdxV(s [][3]float64, at int, v [3]float64) [][3]float64 {
	s = append(s, [3]float64{})
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

func filterOutInts(s []int, remove map[int]bool) []int {
	out := make([]int, 0, len(s))
	for i, v := range s {
		if !remove[i] {
			out = append(out, v)
		}
	}
	return out
}

func filterOutVecs(s [][3]float64, remove map[int]bool) [][3]float64 {
	out := make([][3]float64, 0, len(s))
	for i, v := range s {
		if !remove[i] {
			out = append(out, v)
		}
	}
	return out
}
