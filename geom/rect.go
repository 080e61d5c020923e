// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
)

// Rect is an axis-aligned rectangular prism. Containment is half-open:
// lo <= p < hi on every axis. This is the only region primitive the CORE
// implements; richer region shapes are out of scope.
type Rect struct {
	lo, hi [3]float64
}

// NewRect builds a Rect, panicking (a programming error) if any axis is
// not strictly lo < hi.
func NewRect(xlo, xhi, ylo, yhi, zlo, zhi float64) Rect {
	if xlo >= xhi {
		chk.Panic("geom: xlo (%v) must be less than xhi (%v)", xlo, xhi)
	}
	if ylo >= yhi {
		chk.Panic("geom: ylo (%v) must be less than yhi (%v)", ylo, yhi)
	}
	if zlo >= zhi {
		chk.Panic("geom: zlo (%v) must be less than zhi (%v)", zlo, zhi)
	}
	return Rect{lo: [3]float64{xlo, ylo, zlo}, hi: [3]float64{xhi, yhi, zhi}}
}

// Lo returns the lower corner.
func (r Rect) Lo() [3]float64 { return r.lo }

// Hi returns the upper corner.
func (r Rect) Hi() [3]float64 { return r.hi }

// LoAxis returns the lower bound along the given axis.
func (r Rect) LoAxis(a Axis) float64 { return r.lo[a.Index()] }

// HiAxis returns the upper bound along the given axis.
func (r Rect) HiAxis(a Axis) float64 { return r.hi[a.Index()] }

// Length returns hi-lo along the given axis.
func (r Rect) Length(a Axis) float64 { return r.hi[a.Index()] - r.lo[a.Index()] }

// Lengths returns hi-lo along every axis.
func (r Rect) Lengths() [3]float64 {
	return [3]float64{r.Length(X), r.Length(Y), r.Length(Z)}
}

// Contains reports whether p lies in the half-open box: lo <= p < hi.
func (r Rect) Contains(p [3]float64) bool {
	for i := 0; i < 3; i++ {
		if p[i] < r.lo[i] || p[i] >= r.hi[i] {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of r and o. The result is only meaningful
// (non-empty, i.e. lo < hi on every axis) when the two rects actually
// overlap; callers check that themselves via BoundingBox-style comparisons
// before relying on the geometry.
func (r Rect) Intersect(o Rect) Rect {
	var lo, hi [3]float64
	for i := 0; i < 3; i++ {
		lo[i] = max(r.lo[i], o.lo[i])
		hi[i] = min(r.hi[i], o.hi[i])
	}
	return Rect{lo: lo, hi: hi}
}

// BoundingBox returns r itself: a Rect is already axis-aligned.
func (r Rect) BoundingBox() Rect { return r }

// GetRandomCoord draws a uniformly distributed point inside the rect.
func (r Rect) GetRandomCoord(rng *rand.Rand) [3]float64 {
	return [3]float64{
		r.lo[0] + rng.Float64()*(r.hi[0]-r.lo[0]),
		r.lo[1] + rng.Float64()*(r.hi[1]-r.lo[1]),
		r.lo[2] + rng.Float64()*(r.hi[2]-r.lo[2]),
	}
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
