// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// impl_sample.go - Sample builds variable-length containers.
//
// Contract:
//   • Each Generate draws exactly one count n from the count generator, then
//     exactly n values from the value generator.
//   • Both children persist across calls: the value generator continues from
//     where the previous container stopped; nothing is ever reset.
//   • Negative counts are treated as 0.

package gen

import (
	"iter"
	"slices"
)

// Sampler produces containers of type C holding elements of type T.
type Sampler[T, C any] struct {
	value   Generator[T]
	count   Generator[int]
	collect func(iter.Seq[T]) C
}

// Sample returns a generator of slices. With value Inc(1) and count Inc(1)
// it yields [1], [2 3], [4 5 6], … .
func Sample[T any](value Generator[T], count Generator[int]) *Sampler[T, []T] {
	return SampleInto(value, count, collectSlice[T])
}

// SampleInto is Sample for an arbitrary container type: collect receives a
// sequence of exactly n fresh values and builds the container from it.
// Panics if any argument is nil.
func SampleInto[T, C any](value Generator[T], count Generator[int], collect func(iter.Seq[T]) C) *Sampler[T, C] {
	mustNotBeNil(MethodSample, value)
	mustNotBeNil(MethodSample, count)
	if collect == nil {
		panic(genErrorf(MethodSample, ErrNilGenerator))
	}

	return &Sampler[T, C]{value: value, count: count, collect: collect}
}

// Generate draws one count, then that many values.
func (s *Sampler[T, C]) Generate() C {
	n := max(s.count.Generate(), 0)

	return s.collect(Limit(s.value, n))
}

// collectSlice gathers seq into a non-nil slice.
func collectSlice[T any](seq iter.Seq[T]) []T {
	return slices.AppendSeq(make([]T, 0), seq)
}
