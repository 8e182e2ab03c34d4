// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// api.go - the Generator capability and its closure adapter.
//
// Design contract (strict):
//   - One method: Generate() T. Callable forever, mutates private state.
//   - Generators never return errors; misuse panics at construction time
//     (nil children) or on the first impossible draw (empty Cycle/Repeat).
//   - Composite generators own their children outright (tree-shaped).

package gen

import (
	"golang.org/x/exp/constraints"
)

// Generator produces an unbounded, deterministic sequence of T.
//
// Each call to Generate returns the next value and advances the
// generator's private state as a side effect.
type Generator[T any] interface {
	Generate() T
}

// Func adapts a zero-argument closure to the Generator interface.
// Any state captured by the closure becomes the generator's state.
//
//	n := 0
//	g := gen.Func[int](func() int { n += 2; return n })
type Func[T any] func() T

// Generate calls f.
func (f Func[T]) Generate() T {
	return f()
}

// Number is the set of types Inc can count with.
type Number interface {
	constraints.Integer | constraints.Float
}

// mustNotBeNil panics with ErrNilGenerator when g is nil.
func mustNotBeNil[T any](method string, g Generator[T]) {
	if g == nil {
		panic(genErrorf(method, ErrNilGenerator))
	}
}
