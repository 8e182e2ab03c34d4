// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// impl_subsets.go - Subsets enumerates subsets in binary counting order.
//
// Limitation (deliberate):
//   The subset index is a uint. Only the first min(bits.UintSize, len(base))
//   base elements can ever be selected; any further elements are silently
//   excluded from every subset. Callers with larger bases get the subsets
//   of the leading bits.UintSize elements only.

package gen

import (
	"math/bits"
)

// Subsetter yields subsets of a fixed base list.
type Subsetter[T any] struct {
	base  []T
	index uint
}

// Subsets returns a generator whose k-th value (from 0) contains base[i]
// exactly when bit i of k is set. For base [a b c] the sequence is
// [] [a] [b] [a b] [c] [a c] [b c] [a b c], then it starts over.
// The base is copied.
func Subsets[T any](base ...T) *Subsetter[T] {
	return &Subsetter[T]{base: append([]T(nil), base...)}
}

// Generate returns the subset selected by the current index, then
// increments the index. The result is never nil.
// Complexity: O(min(bits.UintSize, len(base))).
func (s *Subsetter[T]) Generate() []T {
	eligible := min(bits.UintSize, len(s.base))
	out := make([]T, 0, bits.OnesCount(s.index))
	for i := 0; i < eligible; i++ {
		if s.index&(1<<uint(i)) != 0 {
			out = append(out, s.base[i])
		}
	}
	s.index++

	return out
}

// Eligible reports how many leading base elements can appear in a subset.
func (s *Subsetter[T]) Eligible() int {
	return min(bits.UintSize, len(s.base))
}
