// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/M-S-Jacobs2727/jmd/comm"
	"github.com/M-S-Jacobs2727/jmd/queue"
)

// dispatchState is the Manager's accumulated knowledge across one Run:
// in-flight face-channel registrations, the Sum collective in progress,
// and the output header/row-in-progress.
type dispatchState struct {
	numWorkers int

	pendingRegistrations map[pairKey]comm.W2M

	sumPartials map[int]int

	outputColumns []string
	outputRow     map[string]map[int]float64
	outputOps     map[string]comm.Operation
	headerPrinted bool
}

func newDispatchState(numWorkers int) *dispatchState {
	return &dispatchState{
		numWorkers:           numWorkers,
		pendingRegistrations: make(map[pairKey]comm.W2M),
		sumPartials:          make(map[int]int),
		outputRow:            make(map[string]map[int]float64),
		outputOps:            make(map[string]comm.Operation),
	}
}

// handle routes one W2M message to its handler. W2MComplete and W2MError
// are handled by the caller; every other kind is dispatched here.
func (d *dispatchState) handle(msg comm.W2M, m2wOut []*queue.Unbounded[comm.M2W]) {
	switch msg.Kind {
	case comm.W2MRegisterSender:
		d.handleRegisterSender(msg, m2wOut)
	case comm.W2MSum:
		d.handleSum(msg, m2wOut)
	case comm.W2MSetupOutput:
		d.handleSetupOutput(msg)
	case comm.W2MInitialOutput:
		if !d.headerPrinted {
			d.headerPrinted = true
			d.printHeader()
		}
	case comm.W2MOutput:
		d.handleOutput(msg)
	case comm.W2MComplete:
		// counted by the caller
	default:
		chk.Panic("manager: unexpected W2M kind %d", int(msg.Kind))
	}
}

// handleSum implements the Sum(usize) collective: every worker's partial
// is buffered by worker index (so a worker cannot double-count by
// resending before the round completes) until all numWorkers have
// reported, then the total is broadcast back to every worker.
func (d *dispatchState) handleSum(msg comm.W2M, m2wOut []*queue.Unbounded[comm.M2W]) {
	d.sumPartials[msg.WorkerIdx] = msg.SumValue
	if len(d.sumPartials) < d.numWorkers {
		return
	}
	total := 0
	for _, v := range d.sumPartials {
		total += v
	}
	for i := 0; i < d.numWorkers; i++ {
		m2wOut[i].Send(comm.M2W{Kind: comm.M2WSumResult, SumResult: total})
	}
	d.sumPartials = make(map[int]int)
}

// handleSetupOutput adopts the first SetupOutput any worker sends as the
// Manager's header (spec.md §4.J); later announcements are ignored, since
// every worker is configured with the same columns.
func (d *dispatchState) handleSetupOutput(msg comm.W2M) {
	if d.outputColumns != nil {
		return
	}
	d.outputColumns = msg.OutputColumns
}

func (d *dispatchState) printHeader() {
	io.Pf("%s\n", strings.Join(d.outputColumns, "\t"))
}

// handleOutput buffers one worker's value for one column until every
// worker has reported that column for the current tick, then reduces and
// prints the row once every column is complete.
func (d *dispatchState) handleOutput(msg comm.W2M) {
	byWorker, ok := d.outputRow[msg.Column]
	if !ok {
		byWorker = make(map[int]float64)
		d.outputRow[msg.Column] = byWorker
		d.outputOps[msg.Column] = msg.Op
	}
	byWorker[msg.WorkerIdx] = msg.Value

	for _, col := range d.outputColumns {
		if len(d.outputRow[col]) < d.numWorkers {
			return
		}
	}
	d.printRow()
}

func (d *dispatchState) printRow() {
	fields := make([]string, len(d.outputColumns))
	for i, col := range d.outputColumns {
		byWorker := d.outputRow[col]
		op := d.outputOps[col]
		acc := op.Identity()
		for w := 0; w < d.numWorkers; w++ {
			acc = op.Apply(acc, byWorker[w], w)
		}
		fields[i] = strconv.FormatFloat(acc, 'g', -1, 64)
	}
	io.Pf("%s\n", strings.Join(fields, "\t"))
	d.outputRow = make(map[string]map[int]float64)
}
