// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comm defines the wire-level message shapes that flow over the
// face-to-face channels between neighboring workers and over the
// worker-to-manager and manager-to-worker channels. It introduces no
// concurrency of its own; it is the vocabulary the domain and manager
// packages exchange.
package comm

import "github.com/cpmech/gosl/chk"

// Kind tags which field of a Message is populated, avoiding a
// Sender-per-payload-shape explosion on the face channels.
type Kind int

const (
	KindIdxs Kind = iota
	KindTypes
	KindFloat
	KindFloat3
	KindAtoms
)

// AtomRecord is the whole-atom payload carried by a KindAtoms Message
// during forward comm.
type AtomRecord struct {
	ID   int
	Type int
	Pos  [3]float64
	Vel  [3]float64
}

// Message is the single tagged-sum payload type carried on every face
// channel. Exactly one of the slice fields is meaningful, selected by Kind.
type Message struct {
	Kind   Kind
	Idxs   []int
	Types  []int
	Floats []float64
	Vecs   [][3]float64
	Atoms  []AtomRecord
}

// IdxsMessage builds a KindIdxs Message.
func IdxsMessage(ids []int) Message {
	return Message{Kind: KindIdxs, Idxs: ids}
}

// TypesMessage builds a KindTypes Message.
func TypesMessage(types []int) Message {
	return Message{Kind: KindTypes, Types: types}
}

// FloatMessage builds a KindFloat Message.
func FloatMessage(v []float64) Message {
	return Message{Kind: KindFloat, Floats: v}
}

// Float3Message builds a KindFloat3 Message.
func Float3Message(v [][3]float64) Message {
	return Message{Kind: KindFloat3, Vecs: v}
}

// AtomsMessage builds a KindAtoms Message.
func AtomsMessage(records []AtomRecord) Message {
	return Message{Kind: KindAtoms, Atoms: records}
}

// MustIdxs returns the Idxs field, panicking if Kind is not KindIdxs. Used
// at receive sites where the protocol fixes the expected shape; a mismatch
// is a protocol error, not a domain-expected condition.
func (m Message) MustIdxs() []int {
	if m.Kind != KindIdxs {
		chk.Panic("comm: expected KindIdxs message, got kind %d", int(m.Kind))
	}
	return m.Idxs
}

// MustFloat3 returns the Vecs field, panicking if Kind is not KindFloat3.
func (m Message) MustFloat3() [][3]float64 {
	if m.Kind != KindFloat3 {
		chk.Panic("comm: expected KindFloat3 message, got kind %d", int(m.Kind))
	}
	return m.Vecs
}

// MustAtoms returns the Atoms field, panicking if Kind is not KindAtoms.
func (m Message) MustAtoms() []AtomRecord {
	if m.Kind != KindAtoms {
		chk.Panic("comm: expected KindAtoms message, got kind %d", int(m.Kind))
	}
	return m.Atoms
}
