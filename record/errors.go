// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// errors.go - sentinel errors for the record package.
//
// Error policy:
//   • Build and Generate never fail.
//   • Declaration mistakes (nil sources, negative fixed counts, nil logger)
//     panic with an error wrapping a sentinel, like option constructors.
//   • Schema mutation returns errors; branch with errors.Is.

package record

import (
	"errors"
	"fmt"
)

// ErrNilSource indicates a field was declared with a nil generator or
// builder factory.
var ErrNilSource = errors.New("record: nil field source")

// ErrNegativeCount indicates a fixed-count sequence field with count < 0.
var ErrNegativeCount = errors.New("record: negative sequence count")

// ErrEmptyFieldName indicates a column without a name was added to a Schema.
var ErrEmptyFieldName = errors.New("record: empty field name")

// ErrDuplicateField indicates two columns with the same name in a Schema.
var ErrDuplicateField = errors.New("record: duplicate field")

// ErrUnknownField indicates a Schema lookup by a name it does not hold.
var ErrUnknownField = errors.New("record: unknown field")

// ErrFieldType indicates an override whose type differs from the column's.
var ErrFieldType = errors.New("record: field type mismatch")

// recordErrorf prefixes err with method and optional detail, keeping err
// reachable through errors.Is.
func recordErrorf(method string, err error, detail ...any) error {
	if len(detail) == 0 {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprint(detail...), err)
}
