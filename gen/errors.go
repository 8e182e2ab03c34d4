// SPDX-License-Identifier: MIT
// Package: boulder/gen
//
// errors.go - sentinel errors for the gen package.
//
// Error policy:
//   • Generators have no error channel. The conditions below surface as
//     panics whose value is an error wrapping one of these sentinels, so a
//     recovering caller can still branch with errors.Is.
//   • Context is attached with %w via genErrorf; sentinel messages are stable.

package gen

import (
	"errors"
	"fmt"
)

// ErrEmptySequence indicates Cycle or Repeat was asked for a value while the
// underlying sequence has no elements. There is no meaningful next value.
var ErrEmptySequence = errors.New("gen: empty sequence")

// ErrNilGenerator indicates a combinator constructor received a nil child.
var ErrNilGenerator = errors.New("gen: nil generator")

// ErrNilScheme indicates Label received a nil IDFn.
var ErrNilScheme = errors.New("gen: nil id scheme")

// genErrorf prefixes err with the combinator name, keeping err for errors.Is.
func genErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
