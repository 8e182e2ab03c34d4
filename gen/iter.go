// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// iter.go - adapters exposing a Generator as a Go iterator.
//
// Both adapter families are logically infinite; termination is the
// consumer's job (break, Limit, Take). Neither can rewind: consuming N
// values advances the underlying generator by exactly N steps.

package gen

import (
	"iter"
)

// All borrows g as an infinite iter.Seq. Ranging over the result draws from
// g directly, so a second All(g) continues where the first one stopped.
func All[T any](g Generator[T]) iter.Seq[T] {
	mustNotBeNil(MethodIterator, g)
	return func(yield func(T) bool) {
		for {
			if !yield(g.Generate()) {
				return
			}
		}
	}
}

// Limit borrows g as an iter.Seq yielding at most n values. n <= 0 yields
// nothing and leaves g untouched.
func Limit[T any](g Generator[T], n int) iter.Seq[T] {
	mustNotBeNil(MethodIterator, g)
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(g.Generate()) {
				return
			}
		}
	}
}

// Take draws the next n values from g. The result is never nil.
func Take[T any](g Generator[T], n int) []T {
	mustNotBeNil(MethodIterator, g)
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}

	return out
}

// Iterator takes exclusive ownership of a generator. Callers should not keep
// using the generator they handed over.
type Iterator[T any] struct {
	g        Generator[T]
	consumed int
}

// NewIterator wraps g. Panics if g is nil.
func NewIterator[T any](g Generator[T]) *Iterator[T] {
	mustNotBeNil(MethodIterator, g)
	return &Iterator[T]{g: g}
}

// Next returns the next value of the owned generator.
func (it *Iterator[T]) Next() T {
	it.consumed++
	return it.g.Generate()
}

// Seq exposes the iterator as an infinite iter.Seq sharing its position.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Consumed reports how many values have been drawn through this iterator.
func (it *Iterator[T]) Consumed() int {
	return it.consumed
}

// Generate makes an Iterator usable wherever a Generator is expected.
func (it *Iterator[T]) Generate() T {
	return it.Next()
}
