// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// impl_cycle.go - Cycle replays a restartable iter.Seq forever.
//
// Contract:
//   • The wrapped seq must be restartable: ranging over it again starts over
//     (true for slices.Values, maps.Keys, and most hand-written sequences).
//   • An empty seq is a programming error: Generate panics with an error
//     wrapping ErrEmptySequence.
//   • The pull cursor obtained from iter.Pull is released on exhaustion and
//     by Close.

package gen

import (
	"iter"
)

// Cycler yields the elements of a sequence, wrapping to its start when it
// runs out.
type Cycler[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

// Cycle returns a generator replaying seq indefinitely.
// Panics if seq is nil.
func Cycle[T any](seq iter.Seq[T]) *Cycler[T] {
	if seq == nil {
		panic(genErrorf(MethodCycle, ErrNilGenerator))
	}
	return &Cycler[T]{seq: seq}
}

// Generate returns the next element, restarting the sequence when the
// previous pass is exhausted.
// Panics (ErrEmptySequence) when a fresh pass yields nothing.
func (c *Cycler[T]) Generate() T {
	if c.next != nil {
		if v, ok := c.next(); ok {
			return v
		}
		c.Close()
	}

	// start a new pass
	c.next, c.stop = iter.Pull(c.seq)
	v, ok := c.next()
	if !ok {
		c.Close()
		panic(genErrorf(MethodCycle, ErrEmptySequence))
	}

	return v
}

// Close releases the current pass, if any. A later Generate starts a new
// pass from the beginning of the sequence.
func (c *Cycler[T]) Close() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
}
