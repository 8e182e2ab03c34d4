// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// schema.go - ordered, struct-less records assembled from Fields.
//
// A Schema is the dynamic counterpart of a hand-written record generator:
// columns keep their declaration order, each Generate resolves every column
// once in that order, and the result is an ordered row.

package record

import (
	"github.com/elliotchance/orderedmap/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/boulder/gen"
)

// Row is one generated record: column name → value, in declaration order.
type Row = orderedmap.OrderedMap[string, any]

// Column is a type-erased Field. Only *Field[T] implements it.
type Column interface {
	Name() string
	Kind() Kind
	Overridden() bool

	sourceName() string
	resolveAny() any
}

// Schema generates Rows from an ordered set of columns.
type Schema struct {
	cfg       config
	columns   *orderedmap.OrderedMap[string, Column]
	generated int
}

// compile-time check
var _ gen.Generator[*Row] = (*Schema)(nil)

// NewSchema returns an empty schema configured by opts.
func NewSchema(opts ...Option) *Schema {
	return &Schema{
		cfg:     newConfig(opts...),
		columns: orderedmap.NewOrderedMap[string, Column](),
	}
}

// Add appends columns in order. It stops at the first invalid column and
// returns an error wrapping ErrNilSource, ErrEmptyFieldName or
// ErrDuplicateField; columns before it stay added.
func (s *Schema) Add(cols ...Column) error {
	for i, c := range cols {
		if c == nil {
			return recordErrorf(MethodSchemaAdd, ErrNilSource, "column ", i)
		}
		if c.Name() == "" {
			return recordErrorf(MethodSchemaAdd, ErrEmptyFieldName, "column ", i)
		}
		if _, ok := s.columns.Get(c.Name()); ok {
			return recordErrorf(MethodSchemaAdd, ErrDuplicateField, c.Name())
		}
		s.columns.Set(c.Name(), c)
	}

	return nil
}

// MustAdd is Add that panics on error, for fixture declarations.
func (s *Schema) MustAdd(cols ...Column) *Schema {
	if err := s.Add(cols...); err != nil {
		panic(err)
	}

	return s
}

// Column returns the column called name.
func (s *Schema) Column(name string) (Column, bool) {
	return s.columns.Get(name)
}

// Names returns column names in declaration order.
func (s *Schema) Names() []string {
	return s.columns.Keys()
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return s.columns.Len()
}

// Generated returns how many rows Generate has produced.
func (s *Schema) Generated() int {
	return s.generated
}

// Override sets the generator of the column called name. It fails with
// ErrUnknownField if there is no such column and ErrFieldType if the
// column does not hold values of type T. A nil g clears the override.
func Override[T any](s *Schema, name string, g gen.Generator[T]) error {
	c, ok := s.columns.Get(name)
	if !ok {
		return recordErrorf(MethodOverride, ErrUnknownField, name)
	}
	f, ok := c.(*Field[T])
	if !ok {
		return recordErrorf(MethodOverride, ErrFieldType, name)
	}
	f.SetGenerator(g)

	return nil
}

// Generate resolves every column once, in order, and returns the row.
func (s *Schema) Generate() *Row {
	s.generated++
	logger := s.cfg.logger.With(zap.String("schema", s.cfg.name), zap.Int("row", s.generated))

	row := orderedmap.NewOrderedMap[string, any]()
	for el := s.columns.Front(); el != nil; el = el.Next() {
		c := el.Value
		if ce := logger.Check(zap.DebugLevel, "field resolved"); ce != nil {
			ce.Write(zap.String("field", c.Name()), zap.String("source", c.sourceName()))
		}
		row.Set(c.Name(), c.resolveAny())
	}
	logger.Debug("record generated", zap.Int("fields", row.Len()))

	return row
}
