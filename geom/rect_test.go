// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rect01(tst *testing.T) {

	chk.PrintTitle("rect01. construction and containment")

	r := NewRect(0, 10, 0, 10, 0, 10)
	lengths := r.Lengths()
	chk.Vector(tst, "lengths", 1e-15, lengths[:], []float64{10, 10, 10})

	if !r.Contains([3]float64{0, 0, 0}) {
		tst.Errorf("lower corner should be contained (half-open box)")
	}
	if r.Contains([3]float64{10, 0, 0}) {
		tst.Errorf("upper corner should NOT be contained (half-open box)")
	}
	if !r.Contains([3]float64{9.999, 9.999, 9.999}) {
		tst.Errorf("point just inside the upper corner should be contained")
	}
}

func Test_rect02(tst *testing.T) {

	chk.PrintTitle("rect02. invalid construction panics")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("NewRect should have panicked with xlo >= xhi")
		}
	}()
	NewRect(10, 0, 0, 10, 0, 10)
}

func Test_rect03(tst *testing.T) {

	chk.PrintTitle("rect03. intersection and random coord")

	a := NewRect(0, 10, 0, 10, 0, 10)
	b := NewRect(5, 15, -5, 5, 2, 8)
	x := a.Intersect(b)
	xlo, xhi := x.Lo(), x.Hi()
	chk.Vector(tst, "lo", 1e-15, xlo[:], []float64{5, 0, 2})
	chk.Vector(tst, "hi", 1e-15, xhi[:], []float64{10, 5, 8})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p := a.GetRandomCoord(rng)
		if !a.Contains(p) {
			tst.Errorf("random coord %v should be contained in %v", p, a)
		}
	}
}
