package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, "./output", cfg.Data.OutDir)
	assert.Equal(t, "ID", cfg.Data.Country)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.Mongo.URI)
	assert.Equal(t, "myfluence", cfg.Mongo.Database)
	assert.Empty(t, cfg.Schedule)
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017/")
	t.Setenv("DEFAULT_COUNTRY", "SG")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017/", cfg.Mongo.URI)
	assert.Equal(t, "SG", cfg.Data.Country)
}

func TestLoadConfigExplicitOverridesBeatEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/env/data")

	cfg, err := LoadConfig("", map[string]any{"data.dir": "/flag/data"})
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", cfg.Data.Dir)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"data:\n  country: MY\nmongo:\n  database: analytics\nschedule: \"0 0 3 * * *\"\n",
	), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "MY", cfg.Data.Country)
	assert.Equal(t, "analytics", cfg.Mongo.Database)
	assert.Equal(t, "0 0 3 * * *", cfg.Schedule)
	// 文件未覆盖的键仍取默认值
	assert.Equal(t, "./data", cfg.Data.Dir)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := LoadConfig("", map[string]any{"data.country": ""})
	assert.Error(t, err)
}
