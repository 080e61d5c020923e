// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom holds the axis-aligned box arithmetic and index conversions
// shared by every other package in jmd.
package geom

// Axis identifies one of the three Cartesian directions.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Index returns the 0,1,2 slot of this axis into a [3]float64 triple.
func (a Axis) Index() int {
	return int(a)
}

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		panic("geom: invalid axis")
	}
}

// Lo returns the Direction on the lower face of this axis.
func (a Axis) Lo() Direction {
	switch a {
	case X:
		return Xlo
	case Y:
		return Ylo
	case Z:
		return Zlo
	default:
		panic("geom: invalid axis")
	}
}

// Hi returns the Direction on the upper face of this axis.
func (a Axis) Hi() Direction {
	switch a {
	case X:
		return Xhi
	case Y:
		return Yhi
	case Z:
		return Zhi
	default:
		panic("geom: invalid axis")
	}
}
