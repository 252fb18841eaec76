package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.NPoints)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Unseeded)
	assert.Equal(t, "value", cfg.Column)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	require.NotNil(t, cfg.SeedPtr())
	assert.Equal(t, int64(42), *cfg.SeedPtr())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TSGROWTH_N_POINTS", "25")
	t.Setenv("TSGROWTH_SEED", "-7")
	t.Setenv("TSGROWTH_COLUMN", "time")
	t.Setenv("TSGROWTH_OUTPUT_FORMAT", "json")
	t.Setenv("TSGROWTH_LOG_LEVEL", "debug")
	t.Setenv("TSGROWTH_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.NPoints)
	assert.Equal(t, int64(-7), *cfg.SeedPtr())
	assert.Equal(t, "time", cfg.Column)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigUnseeded(t *testing.T) {
	t.Setenv("TSGROWTH_UNSEEDED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg.SeedPtr())
}

func TestLoadConfigLeavesNPointsToGenerator(t *testing.T) {
	t.Setenv("TSGROWTH_N_POINTS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.NPoints)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		msg   string
	}{
		{"non-numeric n_points", "TSGROWTH_N_POINTS", "ten", "failed to load config from env"},
		{"non-numeric seed", "TSGROWTH_SEED", "4.2", "failed to load config from env"},
		{"unknown output format", "TSGROWTH_OUTPUT_FORMAT", "parquet", "config validation failed"},
		{"unknown log format", "TSGROWTH_LOG_FORMAT", "xml", "config validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg, err := LoadConfig()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConfigValidateRequiresColumn(t *testing.T) {
	cfg := &Config{NPoints: 10, OutputFormat: "table", LogFormat: "text"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column")
}
