// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

// canonicalDir picks the "lo" member of an opposite-direction pair, so a
// registration and its matching registration from the peer (sent in the
// opposite direction) hash to the same key regardless of which side filed
// it first or whether both sides happen to be the same worker (a periodic
// axis with a single subdomain neighbors itself).
func canonicalDir(d geom.Direction) geom.Direction {
	if d.IsLo() {
		return d
	}
	return d.Opposite()
}

// pairKey identifies one face-channel registration pair: the two worker
// indices involved (order-independent) plus the axis face they share.
type pairKey struct {
	lo, hi int
	dir    geom.Direction
}

func registrationKey(msg comm.W2M) pairKey {
	w, p, dir := msg.WorkerIdx, msg.PeerIdx, msg.Dir
	if w <= p {
		return pairKey{lo: w, hi: p, dir: canonicalDir(dir)}
	}
	return pairKey{lo: p, hi: w, dir: canonicalDir(dir)}
}

// handleRegisterSender proxies a W2MRegisterSender: the first of a pair to
// arrive is buffered; the second completes the pair, and both sides are
// sent the peer's Sender, tagged with the direction each originally asked
// about so the response is self-describing.
func (d *dispatchState) handleRegisterSender(msg comm.W2M, m2wOut []*queue.Unbounded[comm.M2W]) {
	key := registrationKey(msg)
	other, found := d.pendingRegistrations[key]
	if !found {
		d.pendingRegistrations[key] = msg
		return
	}
	delete(d.pendingRegistrations, key)
	m2wOut[msg.WorkerIdx].Send(comm.M2W{Kind: comm.M2WSender, Sender: other.Sender, Dir: msg.Dir})
	m2wOut[other.WorkerIdx].Send(comm.M2W{Kind: comm.M2WSender, Sender: msg.Sender, Dir: other.Dir})
}
