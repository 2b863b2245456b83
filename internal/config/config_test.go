package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehnsucht13/zai-pl/internal/config"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
	assert.Contains(t, cfg.HistoryFile, config.DefaultHistoryFile)
	assert.Empty(t, cfg.ModulePaths)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	content := "module_paths:\n  - ./lib\n  - /abs/path\nhistory_limit: 500\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProjectConfigFile), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.ModulePaths, 2)
	assert.Equal(t, filepath.Join(dir, "lib"), cfg.ModulePaths[0])
	assert.Equal(t, "/abs/path", cfg.ModulePaths[1])
	assert.Equal(t, 500, cfg.HistoryLimit)
}

func TestLoadMalformedConfigIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProjectConfigFile), []byte("module_paths: ["), 0644))
	_, err := config.Load(dir)
	require.Error(t, err)
}

func TestHistoryOverride(t *testing.T) {
	dir := t.TempDir()
	content := "history_file: /tmp/custom_history\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProjectConfigFile), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom_history", cfg.HistoryFile)
	assert.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
}
