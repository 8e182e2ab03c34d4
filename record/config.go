package record

import (
	"go.uber.org/zap"
)

// config is the resolved, value-typed Schema configuration.
type config struct {
	logger *zap.Logger
	name   string
}

// newConfig applies opts over the defaults in order (last wins) and
// resolves empty values back to their defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: zap.NewNop(),
		name:   defaultSchemaName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = defaultSchemaName
	}

	return cfg
}
