package gen

import (
	"fmt"
)

// Mapper applies a function to every value of a child generator.
type Mapper[T, U any] struct {
	inner Generator[T]
	fn    func(T) U
}

// Map returns a generator yielding fn(v) for each v drawn from g.
// Panics if g or fn is nil.
func Map[T, U any](g Generator[T], fn func(T) U) *Mapper[T, U] {
	mustNotBeNil(MethodMap, g)
	if fn == nil {
		panic(genErrorf(MethodMap, ErrNilGenerator))
	}

	return &Mapper[T, U]{inner: g, fn: fn}
}

// Generate draws once from the child and transforms the value.
func (m *Mapper[T, U]) Generate() U {
	return m.fn(m.inner.Generate())
}

// Any erases the element type of g so it can feed Pattern.
func Any[T any](g Generator[T]) *Mapper[T, any] {
	return Map(g, func(v T) any { return v })
}

// Formatter renders a fmt format string, drawing one value from each
// argument generator per call, in argument order.
type Formatter struct {
	format string
	args   []Generator[any]
}

// Pattern returns a string generator, e.g.
//
//	gen.Pattern("%d-an-example-%d", gen.Any(gen.Inc(1)), gen.Any(gen.Inc(5)))
//
// yields "1-an-example-5", "2-an-example-6", … .
// Panics if any argument generator is nil.
func Pattern(format string, args ...Generator[any]) *Formatter {
	for _, a := range args {
		mustNotBeNil(MethodPattern, a)
	}

	return &Formatter{format: format, args: append([]Generator[any](nil), args...)}
}

// Generate formats the next set of argument values.
func (f *Formatter) Generate() string {
	vals := make([]any, len(f.args))
	for i, a := range f.args {
		vals[i] = a.Generate()
	}

	return fmt.Sprintf(f.format, vals...)
}
