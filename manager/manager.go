// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manager implements the single arbitrating goroutine spec.md
// §4.J describes: it owns no simulation data, spawns the N worker
// goroutines, proxies their face-channel registration handshake, runs the
// Sum(usize) collective, and reduces+prints their output rows.
package manager

import (
	"fmt"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/md"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

// pollTimeout bounds how long the Manager waits on worker traffic before
// re-checking worker liveness (spec.md §5).
const pollTimeout = 200 * time.Millisecond

// WorkerFunc is the body a spawned worker runs against its own, already
// Domain-connected Simulation: typically configuring the container, atom
// types, potential, atoms, and computes, then calling sim.Run(numSteps).
type WorkerFunc func(sim *md.Simulation)

// Manager coordinates a fleet of workers through one Run call. It holds
// no state between calls.
type Manager struct{}

// New builds a Manager.
func New() *Manager { return &Manager{} }

type workerExit struct {
	idx int
	err error
}

// Run spawns numWorkers goroutines, each owning a fresh
// *md.Simulation connected to the Manager at its assigned worker index,
// then running fn against it. Run blocks until every worker has signalled
// W2MComplete, and panics if any worker reports an error or exits without
// doing so.
func (m *Manager) Run(numWorkers int, fn WorkerFunc) {
	if numWorkers < 1 {
		chk.Panic("manager: numWorkers (%d) must be positive", numWorkers)
	}

	w2mIn := queue.NewUnbounded[comm.W2M]()
	m2wOut := make([]*queue.Unbounded[comm.M2W], numWorkers)
	for i := range m2wOut {
		m2wOut[i] = queue.NewUnbounded[comm.M2W]()
	}
	exits := make(chan workerExit, numWorkers)

	for i := 0; i < numWorkers; i++ {
		go m.runWorker(i, numWorkers, w2mIn, m2wOut[i], fn, exits)
	}

	m.manageComm(numWorkers, w2mIn, m2wOut, exits)
}

func (m *Manager) runWorker(idx, numWorkers int, w2mIn *queue.Unbounded[comm.W2M], m2w *queue.Unbounded[comm.M2W], fn WorkerFunc, exits chan<- workerExit) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d panicked: %v", idx, r)
		}
		exits <- workerExit{idx: idx, err: err}
	}()

	sim := md.New()
	if connErr := sim.Connect(idx, numWorkers, w2mIn, m2w); connErr != nil {
		panic(connErr)
	}
	fn(sim)
}

// manageComm is the Manager's single dispatch loop: it drains w2mIn,
// routes each message kind to its handler, and watches exits for a worker
// that stopped without ever sending W2MComplete.
func (m *Manager) manageComm(numWorkers int, w2mIn *queue.Unbounded[comm.W2M], m2wOut []*queue.Unbounded[comm.M2W], exits <-chan workerExit) {
	state := newDispatchState(numWorkers)
	completedIdx := make([]bool, numWorkers)
	exitedIdx := make([]bool, numWorkers)
	numCompleted := 0

	for numCompleted < numWorkers {
		select {
		case msg, ok := <-w2mIn.Out():
			if !ok {
				chk.Panic("manager: worker channel closed unexpectedly")
			}
			if msg.Kind == comm.W2MError {
				chk.Panic("manager: worker %d reported error: %v", msg.WorkerIdx, msg.Err)
			}
			state.handle(msg, m2wOut)
			if msg.Kind == comm.W2MComplete {
				completedIdx[msg.WorkerIdx] = true
				numCompleted++
			}
		case exit := <-exits:
			if exit.err != nil {
				chk.Panic("manager: %v", exit.err)
			}
			// a worker's W2MComplete can still be queued behind its exit
			// signal, so a clean exit is only judged once traffic goes idle
			exitedIdx[exit.idx] = true
		case <-time.After(pollTimeout):
			// idle tick: any worker that exited cleanly but whose
			// W2MComplete has still not arrived stopped prematurely.
			for i, exited := range exitedIdx {
				if exited && !completedIdx[i] {
					chk.Panic("manager: worker %d exited without signalling completion", i)
				}
			}
		}
	}
}
