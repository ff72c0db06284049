package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DIRKIT_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("DIRKIT_GLOB", "")
	t.Setenv("DIRKIT_TRASH_DIR", "")

	cfg := Load()
	assert.Empty(t, cfg.Glob)
	assert.Empty(t, cfg.TrashDir)
	assert.Nil(t, cfg.CaseSensitive)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "glob: '*.txt'\ncase_sensitive: true\ntrash_dir: /tmp/trash\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("DIRKIT_CONFIG", path)
	t.Setenv("DIRKIT_GLOB", "")
	t.Setenv("DIRKIT_TRASH_DIR", "")

	cfg := Load()
	assert.Equal(t, "*.txt", cfg.Glob)
	assert.Equal(t, "/tmp/trash", cfg.TrashDir)
	require.NotNil(t, cfg.CaseSensitive)
	assert.True(t, *cfg.CaseSensitive)
}

func TestEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("glob: '*.yaml-glob'\n"), 0644))
	t.Setenv("DIRKIT_CONFIG", path)
	t.Setenv("DIRKIT_GLOB", "*.env-glob")

	cfg := Load()
	assert.Equal(t, "*.env-glob", cfg.Glob)
}

func TestLoadMalformedYAMLIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0644))
	t.Setenv("DIRKIT_CONFIG", path)
	t.Setenv("DIRKIT_GLOB", "")

	cfg := Load()
	assert.Empty(t, cfg.Glob)
}
