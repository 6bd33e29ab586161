package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "roleplay:\n  topic: cafe")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "cache_directory: "+filepath.Join(tmpDir, "dictionaries"))
	assert.Contains(t, string(content), "report_directory: "+filepath.Join(tmpDir, "sessions"))
	assert.Contains(t, string(content), "roleplay:\n  topic: cafe\n")

	for _, d := range []string{"dictionaries", "sessions"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir)

	content, err := os.ReadFile(got)
	require.NoError(t, err)

	contentStr := string(content)
	assert.Contains(t, contentStr, "openai:")
	assert.Contains(t, contentStr, "api_key: fake-key-for-testing")
	assert.Contains(t, contentStr, "model: gpt-4o-mini")
	assert.Contains(t, contentStr, "report_directory")
}

func TestCreateModelOutput(t *testing.T) {
	tmpDir := t.TempDir()
	got := CreateModelOutput(t, tmpDir, "output.txt", "[AI Reply]: Hello")

	assert.Equal(t, filepath.Join(tmpDir, "output.txt"), got)
	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "[AI Reply]: Hello", string(content))
}
