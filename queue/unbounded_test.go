// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_unbounded01(tst *testing.T) {

	chk.PrintTitle("unbounded01. FIFO order preserved across a burst send")

	q := NewUnbounded[int]()
	for i := 0; i < 100; i++ {
		q.Send(i)
	}
	for i := 0; i < 100; i++ {
		v, ok := q.Recv()
		if !ok || v != i {
			tst.Errorf("Recv() #%d: got (%d,%v), want (%d,true)", i, v, ok, i)
		}
	}
}

func Test_unbounded02(tst *testing.T) {

	chk.PrintTitle("unbounded02. close drains buffered values then signals done")

	q := NewUnbounded[string]()
	q.Send("a")
	q.Send("b")
	q.Close()

	v, ok := q.Recv()
	if !ok || v != "a" {
		tst.Errorf("first Recv: got (%q,%v)", v, ok)
	}
	v, ok = q.Recv()
	if !ok || v != "b" {
		tst.Errorf("second Recv: got (%q,%v)", v, ok)
	}
	_, ok = q.Recv()
	if ok {
		tst.Errorf("Recv after close and drain should report !ok")
	}
}
