// Package testutil provides shared test helpers for creating config files and model output fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Lines in extraYAML are appended to the generated file.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extraYAML ...string) string {
	t.Helper()

	dirs := []string{"dictionaries", "sessions"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`dictionaries:
  rapidapi:
    cache_directory: %s
outputs:
  report_directory: %s
`,
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "sessions"),
	)
	for _, line := range extraYAML {
		configContent += line + "\n"
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, "openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini")
}

// CreateModelOutput writes a raw model response to tmpDir and returns its path.
func CreateModelOutput(t *testing.T, tmpDir, name, content string) string {
	t.Helper()

	path := filepath.Join(tmpDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
