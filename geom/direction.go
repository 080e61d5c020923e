// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Direction names one of the six faces of a rectangular subdomain. The
// numeric order below (Xlo, Xhi, Ylo, Yhi, Zlo, Zhi) is the fixed schedule
// the forward-comm phase uses; reverse-comm runs it backwards.
type Direction int

const (
	Xlo Direction = iota
	Xhi
	Ylo
	Yhi
	Zlo
	Zhi
)

// AllDirections is the canonical forward-comm face order.
var AllDirections = [6]Direction{Xlo, Xhi, Ylo, Yhi, Zlo, Zhi}

// ReverseDirections is the canonical reverse-comm face order.
var ReverseDirections = [6]Direction{Zhi, Zlo, Yhi, Ylo, Xhi, Xlo}

// Axis returns the axis this direction's face lies on.
func (d Direction) Axis() Axis {
	switch d {
	case Xlo, Xhi:
		return X
	case Ylo, Yhi:
		return Y
	case Zlo, Zhi:
		return Z
	default:
		panic("geom: invalid direction")
	}
}

// IsLo reports whether this direction names the lower face of its axis.
func (d Direction) IsLo() bool {
	switch d {
	case Xlo, Ylo, Zlo:
		return true
	case Xhi, Yhi, Zhi:
		return false
	default:
		panic("geom: invalid direction")
	}
}

// Opposite returns the face on the other side of the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Xlo:
		return Xhi
	case Xhi:
		return Xlo
	case Ylo:
		return Yhi
	case Yhi:
		return Ylo
	case Zlo:
		return Zhi
	case Zhi:
		return Zlo
	default:
		panic("geom: invalid direction")
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Xlo:
		return "Xlo"
	case Xhi:
		return "Xhi"
	case Ylo:
		return "Ylo"
	case Yhi:
		return "Yhi"
	case Zlo:
		return "Zlo"
	case Zhi:
		return "Zhi"
	default:
		panic("geom: invalid direction")
	}
}
