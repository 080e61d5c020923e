// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/nlist"
)

// InnerRect returns the slab of the subdomain adjacent to face dir,
// neighbor_distance thick inward along dir's axis and reaching skin/2
// outward past that face. Transversely it is padded by neighbor_distance
// on the axes exchanged in earlier passes (x for the Y faces, x and y for
// the Z faces) and by skin/2 on the rest. Owned atoms and ghosts received
// in earlier passes that lie inside it are the candidates published toward
// dir during forward comm.
func (d *Domain) InnerRect(dir geom.Direction, nl *nlist.NeighborList) geom.Rect {
	dist := nl.NeighborDistance()
	halfSkin := nl.SkinDistance() * 0.5
	lo, hi := d.subdomain.Lo(), d.subdomain.Hi()

	switch dir {
	case geom.Xlo:
		return geom.NewRect(lo[0]-halfSkin, lo[0]+dist, lo[1]-halfSkin, hi[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Xhi:
		return geom.NewRect(hi[0]-dist, hi[0]+halfSkin, lo[1]-halfSkin, hi[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Ylo:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-halfSkin, lo[1]+dist, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Yhi:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, hi[1]-dist, hi[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Zlo:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-dist, hi[1]+dist, lo[2]-halfSkin, lo[2]+dist)
	case geom.Zhi:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-dist, hi[1]+dist, hi[2]-dist, hi[2]+halfSkin)
	default:
		chk.Panic("domain: invalid direction %v", dir)
		return geom.Rect{}
	}
}

// OuterRect returns the mirror slab just outside face dir: the region
// where ghost atoms received from the peer in direction dir live. Used to
// gather the ghost ids/forces sent back during reverse comm.
func (d *Domain) OuterRect(dir geom.Direction, nl *nlist.NeighborList) geom.Rect {
	dist := nl.NeighborDistance()
	halfSkin := nl.SkinDistance() * 0.5
	lo, hi := d.subdomain.Lo(), d.subdomain.Hi()

	switch dir {
	case geom.Xlo:
		return geom.NewRect(lo[0]-dist, lo[0]+halfSkin, lo[1]-halfSkin, hi[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Xhi:
		return geom.NewRect(hi[0]-halfSkin, hi[0]+dist, lo[1]-halfSkin, hi[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Ylo:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-dist, lo[1]+halfSkin, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Yhi:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, hi[1]-halfSkin, hi[1]+dist, lo[2]-halfSkin, hi[2]+halfSkin)
	case geom.Zlo:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-dist, hi[1]+dist, lo[2]-dist, lo[2]+halfSkin)
	case geom.Zhi:
		return geom.NewRect(lo[0]-dist, hi[0]+dist, lo[1]-dist, hi[1]+dist, hi[2]-halfSkin, hi[2]+dist)
	default:
		chk.Panic("domain: invalid direction %v", dir)
		return geom.Rect{}
	}
}
