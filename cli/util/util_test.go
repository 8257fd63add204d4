package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{nil, 0},
		{ErrCmdAbort, 0},
		{fmt.Errorf("menu: %w", ErrCmdAbort), 0},
		{ErrValidation, 1},
		{fmt.Errorf("directory \"app\": %w", ErrConflict), 1},
		{ErrConfiguration, 1},
		{errors.New("copy failed"), 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ExitCode(tc.err), "error: %v", tc.err)
	}
}

func TestIsDirAndRegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	fileName := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(fileName, []byte("data"), 0o644))

	assert.True(t, IsDir(tmpDir))
	assert.False(t, IsDir(fileName))
	assert.True(t, IsRegularFile(fileName))
	assert.False(t, IsRegularFile(tmpDir))
	assert.False(t, IsRegularFile(filepath.Join(tmpDir, "missing")))
	assert.True(t, Exists(fileName))
	assert.False(t, Exists(filepath.Join(tmpDir, "missing")))
}

func TestAskConfirm(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\nyes\n", true},
		{"y", true},
	}

	for _, tc := range testCases {
		confirmed, err := AskConfirm(strings.NewReader(tc.input), "Continue anyway?")
		require.NoError(t, err)
		assert.Equal(t, tc.expected, confirmed, "input: %q", tc.input)
	}

	_, err := AskConfirm(strings.NewReader(""), "Continue anyway?")
	assert.Error(t, err)
}

func TestGetYamlFileName(t *testing.T) {
	tmpDir := t.TempDir()
	ymlFile := filepath.Join(tmpDir, "create-tpexpress.yml")
	require.NoError(t, os.WriteFile(ymlFile, []byte("{}"), 0o644))

	found, err := GetYamlFileName(filepath.Join(tmpDir, "create-tpexpress.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, ymlFile, found)

	_, err = GetYamlFileName(filepath.Join(tmpDir, "missing.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = GetYamlFileName(filepath.Join(tmpDir, "config.json"), false)
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("default_name: api\n"), 0o644))

	raw, err := ParseYAML(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"default_name": "api"}, raw)

	require.NoError(t, os.WriteFile(cfgFile, []byte("a: [\n"), 0o644))
	_, err = ParseYAML(cfgFile)
	assert.ErrorContains(t, err, "failed to parse YAML")
}
