// Package record assembles structured test records from per-field sources.
//
// A record type gets one hand-written builder (one-shot) and, if needed, one
// hand-written generator (repeatable). Both hold a *Field per struct field.
// A Field resolves its value by a fixed priority:
//
//  1. an explicit override (Set, SetFunc, SetGenerator);
//  2. the declared source: a literal default, a generator, a nested builder
//     or generator, or a sequence rule for slice fields;
//  3. the zero value of the field type.
//
// Exactly one source wins per field per construction.
//
// Sequence fields own two generators, one for the element count and one for
// the elements. Both are created once, when the field is declared, and keep
// their state across records: a generator producing three-element slices
// from Inc(0) yields [0 1 2], then [3 4 5].
//
// Example of a hand-written builder:
//
//	type Womble struct {
//		A string
//		B int
//	}
//
//	type WombleBuilder struct {
//		a *record.Field[string]
//		b *record.Field[int]
//	}
//
//	func NewWombleBuilder() *WombleBuilder {
//		return &WombleBuilder{
//			a: record.Default("a", "hullo"),
//			b: record.Default("b", 7),
//		}
//	}
//
//	func (w *WombleBuilder) A(v string) *WombleBuilder { w.a.Set(v); return w }
//	func (w *WombleBuilder) B(v int) *WombleBuilder    { w.b.Set(v); return w }
//
//	func (w *WombleBuilder) Build() Womble {
//		return Womble{A: w.a.Resolve(), B: w.b.Resolve()}
//	}
//
// For fixtures without a Go struct, Schema composes the same fields into
// ordered rows (orderedmap) and can log every resolution through zap.
//
// Concurrency: none. Fields, builders and schemas must not be shared
// between goroutines without external locking.
package record
