// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue provides the unbounded FIFO message queue used between
// communicating goroutines: each worker's inbound channel (fed by its face
// peers), each worker's Manager-to-worker channel, and the Manager's
// inbound channel, which all workers share. The standard library only
// offers bounded channels, so each queue is a small buffered-slice pump
// running in its own goroutine; Send never blocks the producer on a full
// buffer.
package queue

// Unbounded is an unbounded FIFO queue of T, backed by a goroutine that
// pumps buffered values from In to Out.
type Unbounded[T any] struct {
	in  chan T
	out chan T
}

// NewUnbounded starts a new Unbounded queue's pump goroutine and returns
// the queue.
func NewUnbounded[T any]() *Unbounded[T] {
	u := &Unbounded[T]{in: make(chan T), out: make(chan T)}
	go u.pump()
	return u
}

func (u *Unbounded[T]) pump() {
	var buf []T
	for {
		if len(buf) == 0 {
			v, ok := <-u.in
			if !ok {
				close(u.out)
				return
			}
			buf = append(buf, v)
			continue
		}
		select {
		case v, ok := <-u.in:
			if !ok {
				for _, m := range buf {
					u.out <- m
				}
				close(u.out)
				return
			}
			buf = append(buf, v)
		case u.out <- buf[0]:
			buf = buf[1:]
		}
	}
}

// Send enqueues v. It never blocks on buffer capacity; it only blocks
// momentarily handing off to the pump goroutine.
func (u *Unbounded[T]) Send(v T) { u.in <- v }

// Recv blocks until a value is available and returns it. The second
// return value is false if the queue has been closed and drained.
func (u *Unbounded[T]) Recv() (T, bool) {
	v, ok := <-u.out
	return v, ok
}

// Out exposes the receive side for use in a select statement.
func (u *Unbounded[T]) Out() <-chan T { return u.out }

// In exposes the send side as a plain channel, for handing off to a peer
// that will send on it directly rather than through Send.
func (u *Unbounded[T]) In() chan<- T { return u.in }

// Close signals no more values will be sent. Already-buffered values are
// still delivered before Out is closed.
func (u *Unbounded[T]) Close() { close(u.in) }
