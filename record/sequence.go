// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// sequence.go - slice fields filled by repeated element draws.
//
// Both shapes wrap a gen.Sample built exactly once here:
//   • Sequence:          count = gen.Const(n).
//   • SequenceGenerated: count = caller's generator, advanced once per record.
// The element generator continues across records in both shapes.

package record

import (
	"github.com/katalvlaran/boulder/gen"
)

// Sequence declares a slice field holding exactly n elements per record,
// drawn from elem. A nil elem fills zero values.
// Panics (ErrNegativeCount) if n < 0.
func Sequence[E any](name string, n int, elem gen.Generator[E]) *Field[[]E] {
	if n < 0 {
		panic(recordErrorf(MethodSequence, ErrNegativeCount, name))
	}

	return newField[[]E](name, KindSequence, gen.Sample(elementSource(elem), gen.Const(n)))
}

// SequenceGenerated declares a slice field whose length is drawn from count
// once per record, with elements drawn from elem. A nil elem fills zero
// values; negative counts produce empty slices.
// Panics (ErrNilSource) if count is nil.
func SequenceGenerated[E any](name string, count gen.Generator[int], elem gen.Generator[E]) *Field[[]E] {
	mustSource(MethodSequence, name, count)
	return newField[[]E](name, KindSequenceGenerated, gen.Sample(elementSource(elem), count))
}

func elementSource[E any](elem gen.Generator[E]) gen.Generator[E] {
	if elem == nil {
		var zero E
		return gen.Const(zero)
	}

	return elem
}
