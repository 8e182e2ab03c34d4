package gen

// Constant returns the same value on every call.
type Constant[T any] struct {
	v T
}

// Const returns a generator that yields v forever.
// Reference-typed values (slices, maps, pointers) are shared between draws.
func Const[T any](v T) *Constant[T] {
	return &Constant[T]{v: v}
}

// Generate returns the stored value.
func (c *Constant[T]) Generate() T {
	return c.v
}
