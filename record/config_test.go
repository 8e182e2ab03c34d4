package record

import (
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	require.NotNil(t, cfg.logger)
	require.Equal(t, defaultSchemaName, cfg.name)
}

func TestNewConfig_LastWins(t *testing.T) {
	t.Parallel()

	l1, l2 := zap.NewNop(), zap.NewExample()
	cfg := newConfig(WithLogger(l1), WithName("a"), WithLogger(l2), WithName("b"))
	require.Same(t, l2, cfg.logger)
	require.Equal(t, "b", cfg.name)

	// empty name falls back to the default
	require.Equal(t, defaultSchemaName, newConfig(WithName("")).name)
}

func TestWithLogger_NilPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { WithLogger(nil) })
}
