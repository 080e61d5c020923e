// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlist

import "math"

// ComputeStencil enumerates the half-list offsets into neighboring bins
// for a grid with the given bin size, servicing a given interaction
// distance. The ordering is the sole contract that produces Newton's
// third-law symmetry in the resulting neighbor list: each unordered pair
// of atoms is visited from exactly one of the two bins it occupies.
func ComputeStencil(binSize, neighborDistance float64) [][3]int {
	m := int(math.Ceil(neighborDistance / binSize))
	var stencil [][3]int

	for i := 0; i <= m; i++ {
		stencil = append(stencil, [3]int{i, 0, 0})
	}

	for i := -m; i <= m; i++ {
		for j := 1; j <= m; j++ {
			if cornerDistance2D(i, j)*binSize < neighborDistance {
				stencil = append(stencil, [3]int{i, j, 0})
			}
		}
	}

	for i := -m; i <= m; i++ {
		for j := -m; j <= m; j++ {
			for k := 1; k <= m; k++ {
				if cornerDistance3D(i, j, k)*binSize < neighborDistance {
					stencil = append(stencil, [3]int{i, j, k})
				}
			}
		}
	}

	return stencil
}

func edgeGap(n int) float64 {
	a := n
	if a < 0 {
		a = -a
	}
	g := a - 1
	if g < 0 {
		g = 0
	}
	return float64(g)
}

func cornerDistance2D(i, j int) float64 {
	gi, gj := edgeGap(i), edgeGap(j)
	return math.Sqrt(gi*gi + gj*gj)
}

func cornerDistance3D(i, j, k int) float64 {
	gi, gj, gk := edgeGap(i), edgeGap(j), edgeGap(k)
	return math.Sqrt(gi*gi + gj*gj + gk*gk)
}
