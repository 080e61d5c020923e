// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import "github.com/M-S-Jacobs2727/jmd/geom"

// W2MKind tags which field of a W2M message is populated.
type W2MKind int

const (
	// W2MError reports a fatal protocol error to the Manager.
	W2MError W2MKind = iota
	// W2MComplete signals the worker finished its run successfully.
	W2MComplete
	// W2MOutput carries one column's value for the current output tick.
	W2MOutput
	// W2MID carries a worker's index. manager.Manager assigns indices when
	// it spawns workers, so nothing sends this kind and its dispatch loop
	// rejects it as unexpected.
	W2MID
	// W2MRegisterSender asks the Manager to proxy an inbound Sender to the
	// peer at PeerIdx, tagged with the originating Direction so the
	// Manager's forward is self-describing regardless of arrival order.
	W2MRegisterSender
	// W2MSetupOutput announces the column list the worker will emit; the
	// Manager adopts the first one it receives as the header.
	W2MSetupOutput
	// W2MInitialOutput asks the Manager to print the output header; every
	// worker's Simulation.Run sends it, and the Manager prints the header
	// for the first one only.
	W2MInitialOutput
	// W2MSum contributes this worker's partial to a Sum(usize) collective.
	W2MSum
)

// W2M is a worker-to-manager message.
type W2M struct {
	Kind W2MKind

	Err error

	WorkerIdx int

	Column string
	Value  float64
	Op     Operation

	Sender  chan<- Message // nil for a "no peer on this face" registration
	PeerIdx int
	Dir     geom.Direction

	OutputColumns []string

	SumValue int
}

// M2WKind tags which field of an M2W message is populated.
type M2WKind int

const (
	// M2WError aborts the worker with the carried error.
	M2WError M2WKind = iota
	// M2WSetup carries the full worker-index list in WorkerIdxs;
	// manager.Manager never sends it.
	M2WSetup
	// M2WSender delivers the Sender the Manager proxied from a peer's
	// W2MRegisterSender, tagged with the peer's originating Direction.
	M2WSender
	// M2WSumResult broadcasts the total of a Sum(usize) collective back to
	// every worker.
	M2WSumResult
)

// M2W is a manager-to-worker message.
type M2W struct {
	Kind M2WKind

	Err error

	WorkerIdxs []int

	Sender chan<- Message // nil means "no peer on this face"
	Dir    geom.Direction

	SumResult int
}
