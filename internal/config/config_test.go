package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{"quick_win_min_volume": 250, "verbose": true}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 250, cfg.QuickWinMinVolume)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_NegativeThresholds(t *testing.T) {
	cfg := &Config{QuickWinMinVolume: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GemMinVolume: -5}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GemMaxDifficulty: 150}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Ranked: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Ranked: "mine.json"}
	defaults := Config{
		Ranked:            "default.json",
		Brand:             "brand.json",
		QuickWinMinVolume: 100,
		GemMaxDifficulty:  40,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.json", merged.Ranked)
	assert.Equal(t, "brand.json", merged.Brand)
	assert.Equal(t, 100, merged.QuickWinMinVolume)
	assert.Equal(t, 40.0, merged.GemMaxDifficulty)
}

func TestMergeWithDefaults_OptInBools(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{Verbose: true, Summarize: true})
	assert.True(t, merged.Verbose, "config file can switch verbose on")
	assert.True(t, merged.Summarize, "config file can switch summarize on")

	cfg = Config{Verbose: true}
	merged = cfg.MergeWithDefaults(Config{})
	assert.True(t, merged.Verbose)
	assert.False(t, merged.Summarize)
}
