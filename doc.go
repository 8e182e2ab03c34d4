// Package boulder is a runtime library for deterministic synthetic test data:
// value generators you can compose, and record builders/generators that
// assemble structs field by field.
//
// What is inside?
//
//	gen/    - Generator[T], iterator adapters and combinators
//	          (Const, Inc, Cycle, Repeat, Some, Time, Subsets, Sample,
//	          Pattern, Map, Label)
//	record/ - Builder[T], Field[T] resolution (override > declared source >
//	          zero value), sequence fields, ordered Schema rows
//
// Everything is deterministic: there is no randomness and no global state.
// Two generators constructed the same way produce the same values, and
// composite generators never restart their children between calls.
//
// Quick example:
//
//	names := gen.Pattern("user-%d", gen.Any(gen.Inc(1)))
//	tags  := record.Sequence("tags", 2, gen.Label(gen.SymbolIDFn))
//	fmt.Println(names.Generate(), tags.Resolve()) // user-1 [A B]
//	fmt.Println(names.Generate(), tags.Resolve()) // user-2 [C D]
//
//	go get github.com/katalvlaran/boulder
package boulder
