package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quintet/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tsv", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestParse_OverridesKeepDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("words: dict.txt\nworkers: 4\noutput:\n  format: yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "dict.txt", cfg.Words)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative workers": "workers: -1\n",
		"bad format":       "output:\n  format: xml\n",
		"bad level":        "log:\n  level: loud\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse([]byte("wrods: typo.txt\n"))
	assert.Error(t, err, "unknown keys are rejected")
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quintet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fold_case: true\nlog:\n  format: json\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.FoldCase)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
