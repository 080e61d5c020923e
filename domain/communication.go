// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/M-S-Jacobs2727/jmd/atom"
	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/geom"
	"github.com/M-S-Jacobs2727/jmd/nlist"
)

// ForwardComm publishes ghost atoms to every neighboring subdomain, in the
// fixed Xlo,Xhi,Ylo,Yhi,Zlo,Zhi order. The ghost region is discarded once
// at the start, not per face: the x-pass may publish ghosts that are
// themselves eligible for re-publication in the y- and z-passes, which is
// required to populate corner ghosts.
func (d *Domain) ForwardComm(store *atom.Store, nl *nlist.NeighborList) {
	store.TruncateGhosts()
	for _, dir := range geom.AllDirections {
		if !d.HasPeer(dir) {
			continue
		}
		d.sendForward(store, nl, dir)
		d.recvForward(store)
	}
}

func (d *Domain) sendForward(store *atom.Store, nl *nlist.NeighborList, dir geom.Direction) {
	rect := d.InnerRect(dir, nl)
	ids, types, positions, velocities := store.Ids(), store.Types(), store.Positions(), store.Velocities()

	var records []comm.AtomRecord
	for i := 0; i < store.NumTotal(); i++ {
		if rect.Contains(positions[i]) {
			records = append(records, comm.AtomRecord{ID: ids[i], Type: types[i], Pos: positions[i], Vel: velocities[i]})
		}
	}
	d.Send(comm.AtomsMessage(records), dir)
}

func (d *Domain) recvForward(store *atom.Store) {
	msg := d.Receive()
	for _, rec := range msg.MustAtoms() {
		store.Upsert(rec.ID, rec.Type, rec.Pos, rec.Vel)
	}
}

// ReverseComm accumulates force contributions computed on ghost copies back
// onto their owning worker, in the fixed Zhi,Zlo,Yhi,Ylo,Xhi,Xlo order (the
// reverse of forward comm). Each face sends ids then forces, strictly in
// that order, and the peer is expected to preserve it.
func (d *Domain) ReverseComm(store *atom.Store, nl *nlist.NeighborList, forces [][3]float64) {
	for _, dir := range geom.ReverseDirections {
		if !d.HasPeer(dir) {
			continue
		}
		d.sendReverse(store, nl, forces, dir)
		d.recvReverse(store, forces)
	}
}

func (d *Domain) sendReverse(store *atom.Store, nl *nlist.NeighborList, forces [][3]float64, dir geom.Direction) {
	rect := d.OuterRect(dir, nl)
	ids, positions := store.Ids(), store.Positions()

	var sendIds []int
	var sendForces [][3]float64
	for i := store.NumLocal(); i < store.NumTotal(); i++ {
		if rect.Contains(positions[i]) {
			sendIds = append(sendIds, ids[i])
			sendForces = append(sendForces, forces[i])
		}
	}
	d.Send(comm.IdxsMessage(sendIds), dir)
	d.Send(comm.Float3Message(sendForces), dir)
}

func (d *Domain) recvReverse(store *atom.Store, forces [][3]float64) {
	idMsg := d.Receive()
	forceMsg := d.Receive()
	ids := idMsg.MustIdxs()
	partials := forceMsg.MustFloat3()

	storeIds := store.Ids()
	for j, id := range ids {
		if i := indexOfID(storeIds, id); i >= 0 {
			forces[i][0] += partials[j][0]
			forces[i][1] += partials[j][1]
			forces[i][2] += partials[j][2]
		}
	}
}

func indexOfID(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// ExchangeOwnership migrates owned atoms that have crossed a subdomain
// boundary to their new owner, in the fixed Xlo,Xhi,Ylo,Yhi,Zlo,Zhi order.
// Positions must already be wrapped across periodic global boundaries (see
// container.Container.WrapPoint) before this runs, so a departing atom is
// seen by its true new owner rather than as an out-of-domain outlier. On a
// non-periodic box face with no peer, atoms that leave are simply dropped.
func (d *Domain) ExchangeOwnership(store *atom.Store) {
	for _, dir := range geom.AllDirections {
		d.exchangeOwnershipDir(store, dir)
	}
}

func (d *Domain) exchangeOwnershipDir(store *atom.Store, dir geom.Direction) {
	ai := dir.Axis().Index()
	lo, hi := d.subdomain.LoAxis(dir.Axis()), d.subdomain.HiAxis(dir.Axis())
	positions := store.Positions()

	var leaving []int
	for i := 0; i < store.NumLocal(); i++ {
		p := positions[i][ai]
		if dir.IsLo() && p < lo {
			leaving = append(leaving, i)
		} else if !dir.IsLo() && p >= hi {
			leaving = append(leaving, i)
		}
	}

	if !d.HasPeer(dir) {
		store.RemoveByIndices(leaving)
		return
	}

	ids, types, velocities := store.Ids(), store.Types(), store.Velocities()
	records := make([]comm.AtomRecord, len(leaving))
	for k, i := range leaving {
		records[k] = comm.AtomRecord{ID: ids[i], Type: types[i], Pos: positions[i], Vel: velocities[i]}
	}
	store.RemoveByIndices(leaving)
	d.Send(comm.AtomsMessage(records), dir)

	msg := d.Receive()
	for _, rec := range msg.MustAtoms() {
		if d.subdomain.Contains(rec.Pos) {
			store.InsertOwned(rec.ID, rec.Type, rec.Pos, rec.Vel)
		}
	}
}
