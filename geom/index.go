// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Index3D converts between a linear bin index and its row-major 3D
// coordinate within a fixed [3]int bound box. The row-major convention
// matches the original grid's flattening order: the Z axis varies fastest.
type Index3D struct {
	bounds [3]int
}

// NewIndex3D builds an Index3D over a grid with the given per-axis bin
// counts.
func NewIndex3D(bounds [3]int) Index3D {
	return Index3D{bounds: bounds}
}

// Bounds returns the per-axis bin counts.
func (g Index3D) Bounds() [3]int { return g.bounds }

// Total returns the product of the bounds: the number of linear bins.
func (g Index3D) Total() int {
	return g.bounds[0] * g.bounds[1] * g.bounds[2]
}

// Linear flattens a 3D bin coordinate to a linear index, row-major with Z
// fastest-varying.
func (g Index3D) Linear(idx [3]int) int {
	if idx[0] < 0 || idx[0] >= g.bounds[0] ||
		idx[1] < 0 || idx[1] >= g.bounds[1] ||
		idx[2] < 0 || idx[2] >= g.bounds[2] {
		chk.Panic("geom: index %v out of bounds %v", idx, g.bounds)
	}
	return (idx[0]*g.bounds[1]+idx[1])*g.bounds[2] + idx[2]
}

// Coord3D expands a linear index back to its 3D bin coordinate.
func (g Index3D) Coord3D(linear int) [3]int {
	total := g.Total()
	if linear < 0 || linear >= total {
		chk.Panic("geom: linear index %d out of bounds [0,%d)", linear, total)
	}
	var out [3]int
	tmp := linear
	out[2] = tmp % g.bounds[2]
	tmp /= g.bounds[2]
	out[1] = tmp % g.bounds[1]
	tmp /= g.bounds[1]
	out[0] = tmp
	return out
}

// Wrap reduces a 3D bin coordinate modulo the bounds on every axis,
// wrapping negative components into range. The neighbor list does not use
// it: stencil bins outside the grid are skipped via InBounds.
func (g Index3D) Wrap(idx [3]int) [3]int {
	var out [3]int
	for i := 0; i < 3; i++ {
		m := idx[i] % g.bounds[i]
		if m < 0 {
			m += g.bounds[i]
		}
		out[i] = m
	}
	return out
}

// InBounds reports whether idx lies within [0,bounds) on every axis.
func (g Index3D) InBounds(idx [3]int) bool {
	for i := 0; i < 3; i++ {
		if idx[i] < 0 || idx[i] >= g.bounds[i] {
			return false
		}
	}
	return true
}
