package gen

// Repeater recycles a fixed base list. It is the list-only counterpart of
// Cycler: no iterator state, and the whole generator can be cloned.
type Repeater[T any] struct {
	base  []T
	index int
}

// Repeat returns a generator yielding base[0], base[1], …, base[L-1],
// base[0], … . The base is copied.
func Repeat[T any](base ...T) *Repeater[T] {
	return &Repeater[T]{base: append([]T(nil), base...)}
}

// Generate returns base[index] and advances index modulo len(base).
// Panics (ErrEmptySequence) if base is empty.
func (r *Repeater[T]) Generate() T {
	if len(r.base) == 0 {
		panic(genErrorf(MethodRepeat, ErrEmptySequence))
	}
	v := r.base[r.index%len(r.base)]
	r.index = (r.index + 1) % len(r.base)

	return v
}

// Clone returns an independent copy positioned at the same index.
// The base list is shared; Repeater never mutates it.
func (r *Repeater[T]) Clone() *Repeater[T] {
	cp := *r
	return &cp
}
