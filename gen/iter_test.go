package gen_test

import (
	"testing"

	"github.com/katalvlaran/boulder/gen"

	"github.com/stretchr/testify/require"
)

// TestAll_ResumesWhereStopped verifies that re-wrapping a generator continues
// from its current state rather than restarting it.
func TestAll_ResumesWhereStopped(t *testing.T) {
	t.Parallel()
	g := gen.Inc(0)

	var first []int
	for v := range gen.All[int](g) {
		first = append(first, v)
		if len(first) == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, first)

	var second []int
	for v := range gen.Limit[int](g, 2) {
		second = append(second, v)
	}
	require.Equal(t, []int{3, 4}, second)
	require.Equal(t, 5, g.Peek())
}

func TestLimit_NonPositive(t *testing.T) {
	t.Parallel()
	g := gen.Inc(10)
	for range gen.Limit[int](g, 0) {
		t.Fatal("unexpected value")
	}
	for range gen.Limit[int](g, -1) {
		t.Fatal("unexpected value")
	}
	require.Equal(t, 10, g.Peek())
	require.Equal(t, []int{}, gen.Take[int](g, -5))
}

func TestIterator_Owned(t *testing.T) {
	t.Parallel()
	it := gen.NewIterator[string](gen.Label(gen.PrefixIDFn("v")))
	require.Equal(t, "v0", it.Next())

	var got []string
	for v := range it.Seq() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"v1", "v2"}, got)
	require.Equal(t, "v3", it.Generate())
	require.Equal(t, 4, it.Consumed())
}

func TestAdapters_NilPanics(t *testing.T) {
	t.Parallel()
	requirePanicsWith(t, gen.ErrNilGenerator, func() { gen.All[int](nil) })
	requirePanicsWith(t, gen.ErrNilGenerator, func() { gen.NewIterator[int](nil) })
}
