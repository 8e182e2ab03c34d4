// Package record_test declares small hand-written record builders and
// generators, the way calling code is expected to, and checks how their
// fields compose.
package record_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/boulder/gen"
	"github.com/katalvlaran/boulder/record"

	"github.com/stretchr/testify/require"
)

func foo(a int32) int32 { return a + 6 }

// Womble: literal defaults only.
type Womble struct {
	A string
	B int32
}

type wombleBuilder struct {
	a *record.Field[string]
	b *record.Field[int32]
}

func newWombleBuilder() *wombleBuilder {
	return &wombleBuilder{
		a: record.Default("a", "hullo"),
		b: record.Default("b", foo(1)),
	}
}

func (w *wombleBuilder) A(v string) *wombleBuilder { w.a.Set(v); return w }
func (w *wombleBuilder) B(v int32) *wombleBuilder  { w.b.Set(v); return w }

func (w *wombleBuilder) Build() Womble {
	return Womble{A: w.a.Resolve(), B: w.b.Resolve()}
}

// Badger: nested builders, one with overrides baked into its source.
type Badger struct {
	W Womble
	V Womble
}

type badgerBuilder struct {
	w *record.Field[Womble]
	v *record.Field[Womble]
}

func newBadgerBuilder() *badgerBuilder {
	return &badgerBuilder{
		w: record.Buildable("w", func() record.Builder[Womble] {
			return newWombleBuilder().A("hallo").B(foo(5))
		}),
		v: record.Buildable("v", func() record.Builder[Womble] { return newWombleBuilder() }),
	}
}

func (b *badgerBuilder) W(v Womble) *badgerBuilder { b.w.Set(v); return b }

func (b *badgerBuilder) Build() Badger {
	return Badger{W: b.w.Resolve(), V: b.v.Resolve()}
}

func TestBuilder_Defaults(t *testing.T) {
	t.Parallel()
	require.Equal(t, Womble{A: "hullo", B: 7}, newWombleBuilder().Build())
	require.Equal(t, Womble{A: "hello", B: 4}, newWombleBuilder().A("hello").B(4).Build())
	require.Equal(t, Womble{A: "hullo", B: 9}, newWombleBuilder().B(9).Build())
}

func TestBuilder_Nested(t *testing.T) {
	t.Parallel()
	b := newBadgerBuilder().Build()
	require.Equal(t, Womble{A: "hallo", B: 11}, b.W)
	require.Equal(t, Womble{A: "hullo", B: 7}, b.V)

	custom := newBadgerBuilder().W(Womble{A: "x"}).Build()
	require.Equal(t, Womble{A: "x"}, custom.W)
	require.Equal(t, Womble{A: "hullo", B: 7}, custom.V)
}

// Wizard: a default and a generator.
type Wizard struct {
	A string
	B int32
}

type wizardGenerator struct {
	a *record.Field[string]
	b *record.Field[int32]
}

func newWizardGenerator() *wizardGenerator {
	return &wizardGenerator{
		a: record.Default("a", "hello"),
		b: record.Generated[int32]("b", gen.Inc[int32](5)),
	}
}

func (g *wizardGenerator) A(src gen.Generator[string]) *wizardGenerator { g.a.SetGenerator(src); return g }
func (g *wizardGenerator) B(fn func() int32) *wizardGenerator           { g.b.SetFunc(fn); return g }

func (g *wizardGenerator) Generate() Wizard {
	return Wizard{A: g.a.Resolve(), B: g.b.Resolve()}
}

func TestGenerator_DefaultAndGenerated(t *testing.T) {
	t.Parallel()
	g := newWizardGenerator()
	require.Equal(t, Wizard{A: "hello", B: 5}, g.Generate())
	require.Equal(t, Wizard{A: "hello", B: 6}, g.Generate())
}

func TestGenerator_ClosureOverrides(t *testing.T) {
	t.Parallel()
	var z int32 = 5
	g := newWizardGenerator().
		B(func() int32 { z++; return z }).
		A(gen.Pattern("an-example-%d", gen.Any(gen.Inc(1))))

	require.Equal(t, Wizard{A: "an-example-1", B: 6}, g.Generate())
	require.Equal(t, Wizard{A: "an-example-2", B: 7}, g.Generate())
}

func TestGenerator_IteratesAsSequence(t *testing.T) {
	t.Parallel()
	count := 0
	for w := range gen.Limit[Wizard](newWizardGenerator(), 5) {
		require.Equal(t, int32(5+count), w.B)
		count++
	}
	require.Equal(t, 5, count)
}

// Nested is used as a sequence element.
type Nested struct {
	A int32
	B string
}

type nestedBuilder struct {
	a *record.Field[int32]
	b *record.Field[string]
}

func newNestedBuilder() *nestedBuilder {
	return &nestedBuilder{a: record.Zero[int32]("a"), b: record.Zero[string]("b")}
}

func (n *nestedBuilder) A(v int32) *nestedBuilder  { n.a.Set(v); return n }
func (n *nestedBuilder) B(v string) *nestedBuilder { n.b.Set(v); return n }

func (n *nestedBuilder) Build() Nested {
	return Nested{A: n.a.Resolve(), B: n.b.Resolve()}
}

type nestedGenerator struct {
	a *record.Field[int32]
	b *record.Field[string]
}

func newNestedGenerator() *nestedGenerator {
	return &nestedGenerator{a: record.Zero[int32]("a"), b: record.Zero[string]("b")}
}

func (n *nestedGenerator) A(g gen.Generator[int32]) *nestedGenerator  { n.a.SetGenerator(g); return n }
func (n *nestedGenerator) B(g gen.Generator[string]) *nestedGenerator { n.b.SetGenerator(g); return n }

func (n *nestedGenerator) Generate() Nested {
	return Nested{A: n.a.Resolve(), B: n.b.Resolve()}
}

// incNested yields {5 x2}, {6 x3}, … .
func incNested() gen.Generator[Nested] {
	return newNestedGenerator().
		A(gen.Inc[int32](5)).
		B(gen.Pattern("x%d", gen.Any(gen.Inc(2))))
}

func helloNested() record.Builder[Nested] {
	return newNestedBuilder().A(10).B("hello")
}

// Zebra covers fixed-count sequence fields, built once.
type Zebra[E any] struct {
	A int32
	B []E
}

type zebraBuilder[E any] struct {
	a *record.Field[int32]
	b *record.Field[[]E]
}

func newZebraBuilder[E any](b *record.Field[[]E]) *zebraBuilder[E] {
	return &zebraBuilder[E]{a: record.Zero[int32]("a"), b: b}
}

func (z *zebraBuilder[E]) B(v []E) *zebraBuilder[E] { z.b.Set(v); return z }

func (z *zebraBuilder[E]) Build() Zebra[E] {
	return Zebra[E]{A: z.a.Resolve(), B: z.b.Resolve()}
}

func TestBuilder_FixedSequences(t *testing.T) {
	t.Parallel()

	z1 := newZebraBuilder(record.Sequence[string]("b", 2, nil)).Build()
	require.Equal(t, Zebra[string]{B: []string{"", ""}}, z1)

	z2 := newZebraBuilder(record.Sequence[string]("b", 3, gen.Const("hello"))).Build()
	require.Equal(t, []string{"hello", "hello", "hello"}, z2.B)

	z3 := newZebraBuilder(record.Sequence[string]("b", 4, gen.Pattern("a-%d", gen.Any(gen.Inc(0))))).Build()
	require.Equal(t, []string{"a-0", "a-1", "a-2", "a-3"}, z3.B)

	z4 := newZebraBuilder(record.Sequence("b", 5, incNested())).Build()
	require.Equal(t, []Nested{{5, "x2"}, {6, "x3"}, {7, "x4"}, {8, "x5"}, {9, "x6"}}, z4.B)

	z5 := newZebraBuilder(record.Sequence[Nested]("b", 6, record.FromBuilder(helloNested))).Build()
	require.Len(t, z5.B, 6)
	for _, n := range z5.B {
		require.Equal(t, Nested{10, "hello"}, n)
	}

	z0 := newZebraBuilder(record.Sequence[int]("b", 0, gen.Inc(0))).Build()
	require.Equal(t, []int{}, z0.B)

	over := newZebraBuilder(record.Sequence[int]("b", 3, gen.Inc(0))).B([]int{42}).Build()
	require.Equal(t, []int{42}, over.B)
}

// Kangaroo covers sequence fields on a repeatable generator.
type kangarooGenerator[E any] struct {
	a *record.Field[int32]
	b *record.Field[[]E]
}

func newKangarooGenerator[E any](b *record.Field[[]E]) *kangarooGenerator[E] {
	return &kangarooGenerator[E]{a: record.Zero[int32]("a"), b: b}
}

func (k *kangarooGenerator[E]) Generate() Zebra[E] {
	return Zebra[E]{A: k.a.Resolve(), B: k.b.Resolve()}
}

func TestGenerator_GeneratedCountSequences(t *testing.T) {
	t.Parallel()

	k1 := newKangarooGenerator(record.SequenceGenerated[string]("b", gen.Inc(2), nil))
	require.Equal(t, []string{"", ""}, k1.Generate().B)
	require.Equal(t, []string{"", "", ""}, k1.Generate().B)

	k2 := newKangarooGenerator(record.SequenceGenerated[string]("b", gen.Inc(3), gen.Const("hello")))
	require.Len(t, k2.Generate().B, 3)
	second := k2.Generate()
	require.Equal(t, []string{"hello", "hello", "hello", "hello"}, second.B)
	require.Equal(t, int32(0), second.A)

	// element cursor continues across records
	k3 := newKangarooGenerator(record.SequenceGenerated[string]("b", gen.Inc(4), gen.Pattern("a-%d", gen.Any(gen.Inc(0)))))
	require.Equal(t, []string{"a-0", "a-1", "a-2", "a-3"}, k3.Generate().B)
	require.Equal(t, []string{"a-4", "a-5", "a-6", "a-7", "a-8"}, k3.Generate().B)

	k4 := newKangarooGenerator(record.SequenceGenerated("b", gen.Inc(5), incNested()))
	first := k4.Generate().B
	require.Len(t, first, 5)
	require.Equal(t, Nested{5, "x2"}, first[0])
	require.Equal(t, Nested{9, "x6"}, first[4])
	next := k4.Generate().B
	require.Len(t, next, 6)
	require.Equal(t, Nested{10, "x7"}, next[0])
	require.Equal(t, Nested{15, "x12"}, next[5])

	k5 := newKangarooGenerator(record.SequenceGenerated[Nested]("b", gen.Inc(6), record.FromBuilder(helloNested)))
	require.Len(t, k5.Generate().B, 6)
	seven := k5.Generate().B
	require.Len(t, seven, 7)
	require.Equal(t, Nested{10, "hello"}, seven[6])

	k6 := newKangarooGenerator(record.Sequence("b", 3, incNested()))
	require.Equal(t, []Nested{{5, "x2"}, {6, "x3"}, {7, "x4"}}, k6.Generate().B)
	require.Equal(t, []Nested{{8, "x5"}, {9, "x6"}, {10, "x7"}}, k6.Generate().B)
}

func TestGenerator_CountAdvancesOncePerRecord(t *testing.T) {
	t.Parallel()
	counts := gen.Inc(0)
	k := newKangarooGenerator(record.SequenceGenerated[int]("b", counts, gen.Inc(100)))
	for i := 0; i < 6; i++ {
		require.Len(t, k.Generate().B, i)
		require.Equal(t, i+1, counts.Peek())
	}
}

func TestGenerator_FixedCountAlwaysN(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 4; n++ {
		k := newKangarooGenerator(record.Sequence[rune]("b", n, gen.Repeat('p', 'q')))
		for i := 0; i < 5; i++ {
			require.Len(t, k.Generate().B, n)
		}
	}
}

// Scenario: a defaults to 5; b holds 3 strings "a-{n}" from Inc(0).
type scenario struct {
	A int
	B []string
}

type scenarioGenerator struct {
	a *record.Field[int]
	b *record.Field[[]string]
}

func newScenarioGenerator() *scenarioGenerator {
	return &scenarioGenerator{
		a: record.Default("a", 5),
		b: record.Sequence("b", 3, gen.Map(gen.Inc(0), func(n int) string { return fmt.Sprintf("a-%d", n) })),
	}
}

func (s *scenarioGenerator) Generate() scenario {
	return scenario{A: s.a.Resolve(), B: s.b.Resolve()}
}

func TestScenario_DefaultsAndContinuity(t *testing.T) {
	t.Parallel()
	g := newScenarioGenerator()
	require.Equal(t, scenario{A: 5, B: []string{"a-0", "a-1", "a-2"}}, g.Generate())
	require.Equal(t, scenario{A: 5, B: []string{"a-3", "a-4", "a-5"}}, g.Generate())

	// independent instances share nothing
	require.Equal(t, scenario{A: 5, B: []string{"a-0", "a-1", "a-2"}}, newScenarioGenerator().Generate())
}
