// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// field.go - the per-field resolution engine.
//
// Contract:
//   • The declared source is fixed at construction and never rebuilt.
//   • An override, once set, wins until Reset; it does not advance or touch
//     the declared source.
//   • Resolve draws from exactly one generator.

package record

import (
	"github.com/katalvlaran/boulder/gen"
)

// Field resolves one record field: an override if set, else its declared
// source.
type Field[T any] struct {
	name     string
	kind     Kind
	source   gen.Generator[T]
	override gen.Generator[T]
}

func newField[T any](name string, kind Kind, source gen.Generator[T]) *Field[T] {
	return &Field[T]{name: name, kind: kind, source: source}
}

// Zero declares a field with no source; it resolves to T's zero value.
func Zero[T any](name string) *Field[T] {
	var zero T
	return newField[T](name, KindZero, gen.Const(zero))
}

// Default declares a field resolving to v. Reference-typed defaults are
// shared by every record.
func Default[T any](name string, v T) *Field[T] {
	return newField[T](name, KindDefault, gen.Const(v))
}

// Generated declares a field drawing from g on every resolution.
// Panics if g is nil.
func Generated[T any](name string, g gen.Generator[T]) *Field[T] {
	mustSource(MethodGenerated, name, g)
	return newField(name, KindGenerator, g)
}

// Generatable declares a nested-record field drawing from the record
// generator g. It behaves like Generated; the kind documents intent.
// Panics if g is nil.
func Generatable[T any](name string, g gen.Generator[T]) *Field[T] {
	mustSource(MethodGenerated, name, g)
	return newField(name, KindGeneratable, g)
}

// Buildable declares a nested-record field built from a fresh builder on
// every resolution. Panics if newBuilder is nil.
func Buildable[T any](name string, newBuilder func() Builder[T]) *Field[T] {
	if newBuilder == nil {
		panic(recordErrorf(MethodBuildable, ErrNilSource, name))
	}

	return newField[T](name, KindBuildable, FromBuilder(newBuilder))
}

// Name returns the declared field name.
func (f *Field[T]) Name() string {
	return f.name
}

// Kind returns the declared source kind, regardless of overrides.
func (f *Field[T]) Kind() Kind {
	return f.kind
}

// Overridden reports whether an override is active.
func (f *Field[T]) Overridden() bool {
	return f.override != nil
}

// Set overrides the field with a literal value.
func (f *Field[T]) Set(v T) {
	f.override = gen.Const(v)
}

// SetFunc overrides the field with a producer called once per resolution.
// A nil fn clears the override.
func (f *Field[T]) SetFunc(fn func() T) {
	if fn == nil {
		f.override = nil
		return
	}
	f.override = gen.Func[T](fn)
}

// SetGenerator overrides the field with g. A nil g clears the override.
func (f *Field[T]) SetGenerator(g gen.Generator[T]) {
	f.override = g
}

// Reset clears any override; the declared source applies again.
func (f *Field[T]) Reset() {
	f.override = nil
}

// Resolve returns the field value for one record.
func (f *Field[T]) Resolve() T {
	if f.override != nil {
		return f.override.Generate()
	}

	return f.source.Generate()
}

// Generate makes a Field usable as a generator of its own values.
func (f *Field[T]) Generate() T {
	return f.Resolve()
}

// sourceName reports which source the next Resolve will use.
func (f *Field[T]) sourceName() string {
	if f.override != nil {
		return sourceOverride
	}

	return f.kind.String()
}

func (f *Field[T]) resolveAny() any {
	return f.Resolve()
}

func mustSource[T any](method, name string, g gen.Generator[T]) {
	if g == nil {
		panic(recordErrorf(method, ErrNilSource, name))
	}
}
