// Package gen provides string ID schemes and the Label generator that walks
// a scheme over 0, 1, 2, … .
package gen

import (
	"fmt"
	"strconv"
)

// IDFn renders a zero-based index as an identifier.
// It must be pure: the same idx always renders the same string.
// Panics in implementations indicate an index outside the scheme's domain.
type IDFn func(idx int) string

// DecimalIDFn renders idx in base 10: 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn renders idx in [0,25] as an uppercase letter: 0→"A", 25→"Z".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// AlphanumericIDFn renders idx in base 36: 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	mustBeIndex("AlphanumericIDFn", idx)
	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn renders idx in lowercase hexadecimal: 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	mustBeIndex("HexIDFn", idx)
	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnIDFn renders idx as a spreadsheet column: 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ", 702→"AAA".
// Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	mustBeIndex("ExcelColumnIDFn", idx)
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// PrefixIDFn returns a scheme rendering prefix + decimal idx: "v0", "v1", … .
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustBeIndex("PrefixIDFn", idx)
		return prefix + strconv.Itoa(idx)
	}
}

func mustBeIndex(scheme string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", scheme, idx))
	}
}

// Labeler yields scheme(0), scheme(1), … .
type Labeler struct {
	scheme IDFn
	index  *Incrementer[int]
}

// Label returns a generator of IDs rendered by scheme.
// Panics if scheme is nil.
func Label(scheme IDFn) *Labeler {
	if scheme == nil {
		panic(genErrorf(MethodLabel, ErrNilScheme))
	}

	return &Labeler{scheme: scheme, index: Inc(0)}
}

// Generate renders the next index.
func (l *Labeler) Generate() string {
	return l.scheme(l.index.Generate())
}
