// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

func fakeM2WOut(n int) []*queue.Unbounded[comm.M2W] {
	out := make([]*queue.Unbounded[comm.M2W], n)
	for i := range out {
		out[i] = queue.NewUnbounded[comm.M2W]()
	}
	return out
}

func Test_dispatch01_sumCollectiveWaitsForAllWorkers(tst *testing.T) {

	chk.PrintTitle("dispatch01. Sum broadcasts the total only once every worker has reported")

	d := newDispatchState(2)
	m2w := fakeM2WOut(2)

	d.handleSum(comm.W2M{WorkerIdx: 0, SumValue: 3}, m2w)
	select {
	case <-m2w[0].Out():
		tst.Fatalf("sum should not resolve with only one of two partials")
	default:
	}

	d.handleSum(comm.W2M{WorkerIdx: 1, SumValue: 4}, m2w)
	for i := 0; i < 2; i++ {
		resp, ok := m2w[i].Recv()
		if !ok || resp.Kind != comm.M2WSumResult || resp.SumResult != 7 {
			tst.Errorf("worker %d: got %+v, want SumResult=7", i, resp)
		}
	}
}

func Test_dispatch02_registrationPairsBothSides(tst *testing.T) {

	chk.PrintTitle("dispatch02. a registration pair crosses each side's Sender to the other")

	d := newDispatchState(2)
	m2w := fakeM2WOut(2)

	chA := make(chan comm.Message)
	chB := make(chan comm.Message)

	d.handleRegisterSender(comm.W2M{WorkerIdx: 0, PeerIdx: 1, Dir: geom.Xhi, Sender: chA}, m2w)
	select {
	case <-m2w[1].Out():
		tst.Fatalf("pairing should not resolve until the peer's registration arrives")
	default:
	}

	d.handleRegisterSender(comm.W2M{WorkerIdx: 1, PeerIdx: 0, Dir: geom.Xlo, Sender: chB}, m2w)

	resp0, ok := m2w[0].Recv()
	if !ok || resp0.Kind != comm.M2WSender || resp0.Dir != geom.Xhi {
		tst.Fatalf("worker 0: got %+v", resp0)
	}
	resp1, ok := m2w[1].Recv()
	if !ok || resp1.Kind != comm.M2WSender || resp1.Dir != geom.Xlo {
		tst.Fatalf("worker 1: got %+v", resp1)
	}
}

func Test_dispatch03_selfLoopPairing(tst *testing.T) {

	chk.PrintTitle("dispatch03. a single worker on a periodic axis of width one pairs with itself")

	d := newDispatchState(1)
	m2w := fakeM2WOut(1)

	chSelf := make(chan comm.Message)

	d.handleRegisterSender(comm.W2M{WorkerIdx: 0, PeerIdx: 0, Dir: geom.Xlo, Sender: chSelf}, m2w)
	d.handleRegisterSender(comm.W2M{WorkerIdx: 0, PeerIdx: 0, Dir: geom.Xhi, Sender: chSelf}, m2w)

	first, ok := m2w[0].Recv()
	if !ok || first.Kind != comm.M2WSender {
		tst.Fatalf("expected a resolved pairing, got %+v", first)
	}
	second, ok := m2w[0].Recv()
	if !ok || second.Kind != comm.M2WSender {
		tst.Fatalf("expected a second resolved pairing, got %+v", second)
	}
}

// captureStdout runs f with os.Stdout redirected to a pipe, returning
// everything written.
func captureStdout(tst *testing.T, f func()) string {
	tst.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		tst.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = orig

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func Test_dispatch04_outputHeaderAndRow(tst *testing.T) {

	chk.PrintTitle("dispatch04. header prints once; a row prints only once every column is complete")

	d := newDispatchState(2)
	d.handleSetupOutput(comm.W2M{OutputColumns: []string{"step", "Energy"}})
	d.handleSetupOutput(comm.W2M{OutputColumns: []string{"ignored", "columns"}}) // later announcements are ignored

	header := captureStdout(tst, d.printHeader)
	if header != "step\tEnergy\n" {
		tst.Errorf("header: got %q", header)
	}

	out := captureStdout(tst, func() {
		d.handleOutput(comm.W2M{WorkerIdx: 0, Column: "step", Value: 5, Op: comm.First})
		d.handleOutput(comm.W2M{WorkerIdx: 0, Column: "Energy", Value: 3.1, Op: comm.Sum})
		d.handleOutput(comm.W2M{WorkerIdx: 1, Column: "step", Value: 5, Op: comm.First})
		// row should not print until the last column's last worker reports
		d.handleOutput(comm.W2M{WorkerIdx: 1, Column: "Energy", Value: 4.2, Op: comm.Sum})
	})
	if out != "5\t7.300000000000001\n" {
		tst.Errorf("row: got %q", out)
	}
}
