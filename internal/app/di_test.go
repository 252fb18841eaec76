package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideRenderer(t *testing.T) {
	for _, format := range []string{"table", "csv", "json"} {
		cfg := testConfig()
		cfg.OutputFormat = format
		r, err := ProvideRenderer(cfg)
		require.NoError(t, err)
		assert.Equal(t, format, r.Format())
	}

	cfg := testConfig()
	cfg.OutputFormat = "xlsx"
	r, err := ProvideRenderer(cfg)
	assert.Nil(t, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported OUTPUT_FORMAT "xlsx"`)
}

func TestProvideGeneratorHonoursSeed(t *testing.T) {
	cfg := testConfig()
	a, err := ProvideGenerator(cfg).Generate(10, nil)
	require.NoError(t, err)
	b, err := ProvideGenerator(cfg).Generate(10, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProvideLogger(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "error"
	logger := ProvideLogger(cfg)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}
