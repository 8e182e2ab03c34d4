// SPDX-License-Identifier: MIT
// Package: boulder/record
//
// options.go - functional options for Schema.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     generation itself never panics because of configuration.
//   • No hidden globals; everything flows through config.

package record

import (
	"go.uber.org/zap"
)

// Option customizes a Schema at construction time.
type Option func(*config)

// WithLogger routes schema diagnostics to logger. Rows and field
// resolutions are logged at debug level. Panics on nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(recordErrorf(MethodWithLogger, ErrNilSource))
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithName labels every log entry of the schema. Empty means the default.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
