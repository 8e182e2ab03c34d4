// Package gen provides deterministic value generators and the combinators
// used to compose them into larger fixtures.
//
// A Generator[T] is any value with a single Generate() T method. Each call
// returns the next value of an unbounded sequence and advances private state.
// There is no randomness anywhere in this package: two generators built with
// the same arguments always produce the same sequence.
//
// The package offers the following key components:
//
//   - Capability:
//     – Generator[T]:  the single-method contract.
//     – Func[T]:       adapter turning any func() T closure into a Generator.
//   - Iterator adapters:
//     – All / Limit:   borrow a generator as an iter.Seq (infinite / bounded).
//     – Take:          collect the next n values into a slice.
//     – Iterator[T]:   owns a generator exclusively; Next, Seq, Consumed.
//   - Combinators:
//     – Const:         the same value forever.
//     – Inc:           v, v+1, v+2, … for any Number.
//     – Cycle:         replay an iter.Seq, restarting it when exhausted.
//     – Repeat:        replay a fixed list; cheap to Clone.
//     – Some:          wrap each child value in a non-nil pointer.
//     – Time:          evenly spaced instants.
//     – Subsets:       all subsets of a base list in binary counting order.
//     – Sample:        containers whose length comes from a count generator.
//     – Pattern:       fmt-formatted strings fed by child generators.
//     – Map / Any:     transform or type-erase a child generator.
//     – Label:         string IDs ("0","1",… / "A","B",… / "v0","v1",…).
//
// Composition is by ownership: a combinator exclusively owns its children,
// so the state of a child is never observed or advanced by anyone else.
//
// Guarantees:
//
//   - Determinism: same construction arguments ⇒ identical sequences.
//   - Continuity: composite generators never reset their children.
//   - Fast-fail: constructors panic on nil children; Cycle and Repeat
//     panic on an empty base (the panic value wraps ErrEmptySequence).
//
// Concurrency: none. Generate mutates state in place; callers that share a
// generator between goroutines must synchronize externally.
//
// Quick example:
//
//	ids := gen.Pattern("user-%03d", gen.Any(gen.Inc(1)))
//	fmt.Println(gen.Take(ids, 3)) // [user-001 user-002 user-003]
package gen
