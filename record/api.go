// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// api.go - the Builder capability and its bridge to gen.Generator.
//
// Design contract (strict):
//   - Build is called at most once per builder; builders are not reusable.
//   - Build never fails: every field resolves through the priority chain.
//   - A nested builder is consumed per draw (FromBuilder), so nested records
//     never share override state.

package record

import (
	"github.com/katalvlaran/boulder/gen"
)

// Builder produces exactly one fully populated record.
type Builder[T any] interface {
	Build() T
}

// BuilderFunc adapts a closure to the Builder interface.
type BuilderFunc[T any] func() T

// Build calls f.
func (f BuilderFunc[T]) Build() T {
	return f()
}

// FromBuilder returns a generator that, on every draw, obtains a fresh
// builder from newBuilder and builds it. Panics if newBuilder is nil.
func FromBuilder[T any](newBuilder func() Builder[T]) gen.Func[T] {
	if newBuilder == nil {
		panic(recordErrorf(MethodBuildable, ErrNilSource))
	}

	return func() T {
		return newBuilder().Build()
	}
}
