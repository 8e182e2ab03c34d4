package gen

// Optional wraps each value of a child generator in a non-nil pointer, the
// Go shape of an always-present optional field.
type Optional[T any] struct {
	inner Generator[T]
}

// Some returns a generator of *T whose pointees come from g.
// Each call allocates a fresh pointer. Panics if g is nil.
func Some[T any](g Generator[T]) *Optional[T] {
	mustNotBeNil(MethodSome, g)
	return &Optional[T]{inner: g}
}

// Generate draws once from the child and returns its address.
func (o *Optional[T]) Generate() *T {
	v := o.inner.Generate()
	return &v
}
