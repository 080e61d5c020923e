// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlist

import (
	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/geom"
)

// NeighborList holds, for each owned atom, an ordered half list of
// neighbor indices: j appears in neighbors[i] only if j was visited from
// i's bin via the stencil, so each unordered pair (i,j) within cutoff+skin
// appears exactly once across the whole list.
type NeighborList struct {
	grid             Grid
	forceDistance    float64
	skinDistance     float64
	neighborDistance float64
	stencil          [][3]int

	neighbors            [][]int
	built                bool
	positionsAtLastBuild [][3]float64

	UpdateSettings UpdateSettings
}

// New builds a NeighborList over subdomain with the given force cutoff and
// skin distance. The bin size is fixed at (forceDistance+skinDistance)/2,
// matching the construction rule carried from the source implementation.
func New(subdomain geom.Rect, forceDistance, skinDistance float64) *NeighborList {
	if forceDistance <= 0.0 {
		chk.Panic("nlist: force cutoff distance (%v) must be positive", forceDistance)
	}
	if skinDistance <= 0.0 {
		chk.Panic("nlist: skin distance (%v) must be positive", skinDistance)
	}
	binSize := (forceDistance + skinDistance) / 2.0
	neighborDistance := forceDistance + skinDistance
	grid := NewGrid(subdomain, binSize, neighborDistance)
	stencil := ComputeStencil(binSize, neighborDistance)
	return &NeighborList{
		grid:             grid,
		forceDistance:    forceDistance,
		skinDistance:     skinDistance,
		neighborDistance: neighborDistance,
		stencil:          stencil,
		UpdateSettings:   NewUpdateSettings(1, 0, true),
	}
}

// Neighbors returns the current half list; Neighbors()[i] holds the
// indices of i's neighbors.
func (nl *NeighborList) Neighbors() [][]int { return nl.neighbors }

// ForceDistance returns the force cutoff distance.
func (nl *NeighborList) ForceDistance() float64 { return nl.forceDistance }

// SkinDistance returns the skin buffer distance.
func (nl *NeighborList) SkinDistance() float64 { return nl.skinDistance }

// NeighborDistance returns forceDistance+skinDistance.
func (nl *NeighborList) NeighborDistance() float64 { return nl.neighborDistance }

// Grid returns the underlying binning grid.
func (nl *NeighborList) Grid() Grid { return nl.grid }

// Built reports whether Update has run at least once since the list was
// last invalidated.
func (nl *NeighborList) Built() bool { return nl.built }

// SetSkinDistance replaces the skin distance, invalidating the list and
// recomputing the grid and stencil over subdomain.
func (nl *NeighborList) SetSkinDistance(subdomain geom.Rect, skinDistance float64) {
	nl.rebuildGeometry(subdomain, nl.forceDistance, skinDistance)
}

// SetForceDistance replaces the force cutoff distance, invalidating the
// list and recomputing the grid and stencil over subdomain.
func (nl *NeighborList) SetForceDistance(subdomain geom.Rect, forceDistance float64) {
	nl.rebuildGeometry(subdomain, forceDistance, nl.skinDistance)
}

func (nl *NeighborList) rebuildGeometry(subdomain geom.Rect, forceDistance, skinDistance float64) {
	if forceDistance <= 0.0 {
		chk.Panic("nlist: force cutoff distance (%v) must be positive", forceDistance)
	}
	if skinDistance <= 0.0 {
		chk.Panic("nlist: skin distance (%v) must be positive", skinDistance)
	}
	binSize := (forceDistance + skinDistance) / 2.0
	neighborDistance := forceDistance + skinDistance
	nl.grid = NewGrid(subdomain, binSize, neighborDistance)
	nl.stencil = ComputeStencil(binSize, neighborDistance)
	nl.forceDistance = forceDistance
	nl.skinDistance = skinDistance
	nl.neighborDistance = neighborDistance
	nl.built = false
}

// ResetSubdomain recomputes the grid (and its stencil-independent padding)
// over a new subdomain rect, keeping the current force/skin distances.
// Used when a worker's subdomain changes: on Connect, and when the
// container is replaced.
func (nl *NeighborList) ResetSubdomain(subdomain geom.Rect) {
	nl.grid = NewGrid(subdomain, nl.grid.BinSize(), nl.neighborDistance)
	nl.built = false
}

// ShouldUpdate reports whether a rebuild should run at the given step,
// per UpdateSettings and, if Check is set, whether any atom has moved
// farther than skin/2 since the last build.
func (nl *NeighborList) ShouldUpdate(step int, positions [][3]float64) bool {
	if !nl.UpdateSettings.shouldConsider(step) {
		return false
	}
	if !nl.UpdateSettings.Check {
		return true
	}
	return nl.movedTooFar(positions)
}

func (nl *NeighborList) movedTooFar(positions [][3]float64) bool {
	halfSkin2 := (nl.skinDistance / 2.0) * (nl.skinDistance / 2.0)
	n := len(nl.positionsAtLastBuild)
	if n > len(positions) {
		n = len(positions)
	}
	for i := 0; i < n; i++ {
		d2 := distance2(positions[i], nl.positionsAtLastBuild[i])
		if d2 > halfSkin2 {
			return true
		}
	}
	return false
}

// Update rebins every position and re-links the half neighbor list. Only
// the first nlocal positions are candidate owners of a neighbor list
// (ghosts only ever appear as partners, never as i), matching the
// convention that forces are computed only for owned atoms via the
// potential driving this list.
func (nl *NeighborList) Update(positions [][3]float64, nlocal int) {
	bins := nl.binAtoms(positions)
	cutoff2 := nl.neighborDistance * nl.neighborDistance

	nl.neighbors = make([][]int, len(positions))
	for i := 0; i < nlocal; i++ {
		binIdx := nl.grid.CoordTo3D(positions[i])
		for _, offset := range nl.stencil {
			compBin := [3]int{binIdx[0] + offset[0], binIdx[1] + offset[1], binIdx[2] + offset[2]}
			if !nl.grid.index.InBounds(compBin) {
				continue
			}
			linear := nl.grid.index.Linear(compBin)
			for _, j := range bins[linear] {
				// in i's own bin only later indices are taken, so a
				// same-bin pair is listed once
				if j == i || (offset == [3]int{} && j < i) {
					continue
				}
				if distance2(positions[i], positions[j]) < cutoff2 {
					nl.neighbors[i] = append(nl.neighbors[i], j)
				}
			}
		}
	}

	nl.built = true
	nl.positionsAtLastBuild = append([][3]float64(nil), positions...)
}

// RecordRebuildStep marks the step at which the most recent rebuild ran,
// so the next ShouldUpdate computes delta from here rather than step 0.
func (nl *NeighborList) RecordRebuildStep(step int) {
	nl.UpdateSettings.lastUpdateStep = step
}

func (nl *NeighborList) binAtoms(positions [][3]float64) [][]int {
	bins := make([][]int, nl.grid.TotalBins())
	for i, p := range positions {
		lin := nl.grid.CoordToIndex(p)
		bins[lin] = append(bins[lin], i)
	}
	return bins
}

func distance2(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}
