package gen

// Incrementer yields v, v+1, v+2, … .
type Incrementer[T Number] struct {
	next T
}

// Inc returns a generator counting up by one from start.
// Integer types wrap on overflow like ordinary Go arithmetic.
// Complexity: O(1) per call.
func Inc[T Number](start T) *Incrementer[T] {
	return &Incrementer[T]{next: start}
}

// Generate returns the current value, then adds one.
func (g *Incrementer[T]) Generate() T {
	v := g.next
	g.next++

	return v
}

// Peek returns the value the next Generate call will yield.
func (g *Incrementer[T]) Peek() T {
	return g.next
}
