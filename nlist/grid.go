// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nlist builds and rebuilds the binned half neighbor list each
// worker uses to find the short-range interaction partners of its owned
// atoms.
package nlist

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/geom"
)

// Grid is a uniform binning of a region slightly larger than a worker's
// subdomain, padded on every face so that atoms just outside the
// subdomain (ghosts) still land in a bin.
type Grid struct {
	loCorner         [3]float64
	binSize          float64
	neighborDistance float64
	index            geom.Index3D
}

// NewGrid builds a Grid over subdomain, binning at binSize with bins
// padded out by twice neighborDistance on every face.
func NewGrid(subdomain geom.Rect, binSize, neighborDistance float64) Grid {
	if binSize <= 0.0 {
		chk.Panic("nlist: bin size (%v) must be positive", binSize)
	}
	if neighborDistance <= 0.0 {
		chk.Panic("nlist: neighbor distance (%v) must be positive", neighborDistance)
	}
	lengths := subdomain.Lengths()
	minLength := math.Min(lengths[0], math.Min(lengths[1], lengths[2]))
	if binSize >= 0.5*minLength {
		chk.Panic("nlist: bin size (%v) must be less than half the smallest subdomain side (%v)", binSize, minLength)
	}

	buffer := 2.0 * neighborDistance
	lo := subdomain.Lo()
	loCorner := [3]float64{lo[0] - buffer, lo[1] - buffer, lo[2] - buffer}

	var bounds [3]int
	for i := 0; i < 3; i++ {
		bounds[i] = int(math.Ceil((lengths[i] + 2.0*buffer) / binSize))
	}

	return Grid{
		loCorner:         loCorner,
		binSize:          binSize,
		neighborDistance: neighborDistance,
		index:            geom.NewIndex3D(bounds),
	}
}

// BinSize returns the bin edge length.
func (g Grid) BinSize() float64 { return g.binSize }

// NumBins returns the per-axis bin counts.
func (g Grid) NumBins() [3]int { return g.index.Bounds() }

// TotalBins returns the total number of bins.
func (g Grid) TotalBins() int { return g.index.Total() }

// CoordTo3D maps a coordinate to its 3D bin index. A coordinate outside
// the padded grid is a programming error.
func (g Grid) CoordTo3D(p [3]float64) [3]int {
	var idx [3]int
	for i := 0; i < 3; i++ {
		v := math.Floor((p[i] - g.loCorner[i]) / g.binSize)
		if v < 0 {
			chk.Panic("nlist: coordinate %v falls outside the padded grid (lo corner %v)", p, g.loCorner)
		}
		idx[i] = int(v)
	}
	if !g.index.InBounds(idx) {
		chk.Panic("nlist: coordinate %v falls outside the padded grid (lo corner %v, bounds %v)", p, g.loCorner, g.index.Bounds())
	}
	return idx
}

// CoordToIndex maps a coordinate to its linear bin index.
func (g Grid) CoordToIndex(p [3]float64) int {
	return g.index.Linear(g.CoordTo3D(p))
}
