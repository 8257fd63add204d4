package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCliOptsDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, configPath, err := GetCliOpts("")
	require.NoError(t, err)
	assert.Empty(t, configPath)
	assert.Equal(t, GetDefaultCliOpts(), cfg)
}

func TestGetCliOptsFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgContent := `templates_dir: ./tpl
package_manager: pnpm
node:
  min_version: 20
`
	cfgPath := filepath.Join(tmpDir, ConfigName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))

	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, configPath, err := GetCliOpts("")
	require.NoError(t, err)
	expectedPath, err := filepath.EvalSymlinks(cfgPath)
	require.NoError(t, err)
	actualPath, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	assert.Equal(t, expectedPath, actualPath)

	assert.Equal(t, filepath.Join(filepath.Dir(configPath), "tpl"), cfg.TemplatesDir)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, "my-app", cfg.DefaultName)
	assert.Equal(t, "node", cfg.Node.Command)
	assert.Equal(t, "20", cfg.Node.MinVersion)
}

func TestGetCliOptsExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "custom.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("default_name: api\n"), 0o644))

	cfg, configPath, err := GetCliOpts(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, configPath)
	assert.Equal(t, "api", cfg.DefaultName)
	assert.Equal(t, "npm", cfg.PackageManager)

	_, _, err = GetCliOpts(filepath.Join(tmpDir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to get access to configuration file")
}

func TestGetCliOptsUnknownKey(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ConfigName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("unknown_key: 1\n"), 0o644))

	_, _, err := GetCliOpts(cfgPath)
	assert.ErrorContains(t, err, "failed to parse create-tpexpress configuration")
}
