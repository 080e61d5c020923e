// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain decomposes the global Container into one subdomain per
// worker and wires the six face channels a worker uses to exchange ghost
// atoms, reverse forces, and migrating atoms with its neighbors.
package domain

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/container"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

// Domain is a worker's view of the spatial decomposition: its slice of the
// proc grid, its subdomain Rect, and its six outbound face channels plus
// one shared inbound channel.
type Domain struct {
	workerIdx, numWorkers int
	procGrid              [3]int
	index                 geom.Index3D
	idx                   [3]int
	subdomain             geom.Rect

	outbound [6]chan<- comm.Message
	inbound  *queue.Unbounded[comm.Message]

	w2m *queue.Unbounded[comm.W2M]
	m2w *queue.Unbounded[comm.M2W]
}

// New builds an uninitialized Domain with its inbound channel already
// running; Init must be called before it is used for communication.
func New() *Domain {
	return &Domain{inbound: queue.NewUnbounded[comm.Message]()}
}

// ProcGrid picks [Nx,Ny,Nz] with Nx*Ny*Nz == numWorkers by enumerating every
// integer factorization and minimizing the surface-area proxy
// LxLy/(NxNy) + LyLz/(NyNz) + LxLz/(NxNz), which approximates total
// communication volume for a uniform decomposition of a box of lengths
// (lx,ly,lz).
func ProcGrid(numWorkers int, lx, ly, lz float64) [3]int {
	if numWorkers < 1 {
		chk.Panic("domain: numWorkers (%d) must be positive", numWorkers)
	}
	best := [3]int{numWorkers, 1, 1}
	bestScore := math.Inf(1)
	for nx := 1; nx <= numWorkers; nx++ {
		if numWorkers%nx != 0 {
			continue
		}
		rest := numWorkers / nx
		for ny := 1; ny <= rest; ny++ {
			if rest%ny != 0 {
				continue
			}
			nz := rest / ny
			score := lx*ly/float64(nx*ny) + ly*lz/float64(ny*nz) + lx*lz/float64(nx*nz)
			if score < bestScore {
				bestScore = score
				best = [3]int{nx, ny, nz}
			}
		}
	}
	return best
}

// Init chooses the proc grid, locates this worker's slot within it,
// computes its subdomain, and performs the six-direction registration
// handshake with the Manager over w2m/m2w. It returns a protocol error if
// the Manager reports one; any other unexpected response is a programming
// error and panics.
func (d *Domain) Init(c *container.Container, workerIdx, numWorkers int, w2m *queue.Unbounded[comm.W2M], m2w *queue.Unbounded[comm.M2W]) error {
	d.workerIdx = workerIdx
	d.numWorkers = numWorkers
	d.w2m = w2m
	d.m2w = m2w

	lengths := c.Rect().Lengths()
	d.procGrid = ProcGrid(numWorkers, lengths[0], lengths[1], lengths[2])
	d.index = geom.NewIndex3D(d.procGrid)
	d.idx = d.index.Coord3D(workerIdx)
	d.ResetSubdomain(c)

	for _, dir := range geom.AllDirections {
		if err := d.setupNeighbor(c, dir, w2m, m2w); err != nil {
			return err
		}
	}
	return nil
}

// peerIdx returns the linear worker index of this worker's neighbor across
// face dir, and whether one exists (false on a non-periodic box face).
func (d *Domain) peerIdx(c *container.Container, dir geom.Direction) (int, bool) {
	axis := dir.Axis()
	ai := axis.Index()
	n := d.procGrid[ai]
	cur := d.idx[ai]

	var next int
	acrossBox := false
	if dir.IsLo() {
		if cur == 0 {
			next, acrossBox = n-1, true
		} else {
			next = cur - 1
		}
	} else {
		if cur == n-1 {
			next, acrossBox = 0, true
		} else {
			next = cur + 1
		}
	}
	if acrossBox && !c.IsPeriodic(axis) {
		return 0, false
	}
	peerCoord := d.idx
	peerCoord[ai] = next
	return d.index.Linear(peerCoord), true
}

// setupNeighbor registers this worker's inbound channel with the Manager
// for face dir, tagged with dir itself so the Manager's pairing logic is
// self-describing regardless of which side of a pair arrives first (see
// comm.W2MRegisterSender). A non-periodic box face has no peer and needs
// no round trip at all: outbound[dir] is simply left nil.
func (d *Domain) setupNeighbor(c *container.Container, dir geom.Direction, w2m *queue.Unbounded[comm.W2M], m2w *queue.Unbounded[comm.M2W]) error {
	peer, ok := d.peerIdx(c, dir)
	if !ok {
		return nil
	}

	w2m.Send(comm.W2M{
		Kind:      comm.W2MRegisterSender,
		WorkerIdx: d.workerIdx,
		PeerIdx:   peer,
		Dir:       dir,
		Sender:    d.inbound.In(),
	})

	resp, open := m2w.Recv()
	if !open {
		chk.Panic("domain: manager channel closed during neighbor setup for %v", dir)
	}
	switch resp.Kind {
	case comm.M2WError:
		return resp.Err
	case comm.M2WSender:
		if resp.Dir != dir {
			chk.Panic("domain: setup response direction mismatch: want %v got %v", dir, resp.Dir)
		}
		d.outbound[dir] = resp.Sender
		return nil
	default:
		chk.Panic("domain: expected M2WSender during setup, got kind %d", int(resp.Kind))
		return nil
	}
}

// ResetSubdomain recomputes this worker's Rect from the Container and its
// already-assigned proc-grid slot: Container.lo + idx*(L/N) to
// Container.lo + (idx+1)*(L/N) along each axis.
func (d *Domain) ResetSubdomain(c *container.Container) {
	rect := c.Rect()
	lo := rect.Lo()
	var sdlo, sdhi [3]float64
	for axis := 0; axis < 3; axis++ {
		a := geom.Axis(axis)
		length := rect.Length(a) / float64(d.procGrid[axis])
		sdlo[axis] = lo[axis] + length*float64(d.idx[axis])
		sdhi[axis] = sdlo[axis] + length
	}
	d.subdomain = geom.NewRect(sdlo[0], sdhi[0], sdlo[1], sdhi[1], sdlo[2], sdhi[2])
}

// Subdomain returns this worker's owned Rect.
func (d *Domain) Subdomain() geom.Rect { return d.subdomain }

// ProcGridShape returns the [Nx,Ny,Nz] decomposition chosen at Init.
func (d *Domain) ProcGridShape() [3]int { return d.procGrid }

// Idx returns this worker's 3D slot within the proc grid.
func (d *Domain) Idx() [3]int { return d.idx }

// WorkerIdx returns this worker's linear index.
func (d *Domain) WorkerIdx() int { return d.workerIdx }

// HasPeer reports whether a neighbor exists across face dir.
func (d *Domain) HasPeer(dir geom.Direction) bool { return d.outbound[dir] != nil }

// Send posts msg to the neighbor across face dir. It is a silent no-op if
// no neighbor exists there (a non-periodic box face).
func (d *Domain) Send(msg comm.Message, dir geom.Direction) {
	ch := d.outbound[dir]
	if ch == nil {
		return
	}
	ch <- msg
}

// Receive blocks for the next message on the shared inbound channel. The
// fixed per-phase schedule (§4.F) guarantees that whenever Receive is
// called there is exactly one in-flight message addressed to this worker.
func (d *Domain) Receive() comm.Message {
	msg, ok := d.inbound.Recv()
	if !ok {
		chk.Panic("domain: inbound channel closed unexpectedly")
	}
	return msg
}

// SendToManager posts msg to the Manager, stamping WorkerIdx so the
// Manager's column and registration bookkeeping can attribute it.
func (d *Domain) SendToManager(msg comm.W2M) {
	msg.WorkerIdx = d.workerIdx
	d.w2m.Send(msg)
}

// RecvFromManager blocks for the next message the Manager addressed to
// this worker.
func (d *Domain) RecvFromManager() comm.M2W {
	msg, ok := d.m2w.Recv()
	if !ok {
		chk.Panic("domain: manager channel closed unexpectedly")
	}
	return msg
}

// Sum implements the Sum(usize) collective (spec §4.J): every worker
// contributes its local partial and all receive the same total back.
func (d *Domain) Sum(local int) int {
	d.SendToManager(comm.W2M{Kind: comm.W2MSum, SumValue: local})
	resp := d.RecvFromManager()
	if resp.Kind != comm.M2WSumResult {
		chk.Panic("domain: expected M2WSumResult, got kind %d", int(resp.Kind))
	}
	return resp.SumResult
}
