// Package testutil provides shared test helpers for creating config files and card fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	identifier   string
	password     string
	templatePath string
}

// WithCredentials writes the identifier and the password into the config file.
func WithCredentials(identifier, password string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.identifier = identifier
		cfg.password = password
	}
}

// WithDeckTemplate writes a markdown template of decks into the config file.
func WithDeckTemplate(path string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.templatePath = path
	}
}

// SetupTestConfig creates a config file of the API at baseURL without retries.
// The session is saved in tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string, opts ...ConfigOption) string {
	t.Helper()

	var cfg testConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`api:
  base_url: %s
  timeout_seconds: 5
  retry_attempts: 0
session:
  file: %s
`,
		baseURL,
		SessionPath(tmpDir),
	)
	if cfg.identifier != "" || cfg.password != "" {
		configContent += fmt.Sprintf("credentials:\n  identifier: %s\n  password: %s\n", cfg.identifier, cfg.password)
	}
	if cfg.templatePath != "" {
		configContent += fmt.Sprintf("templates:\n  deck_markdown_template: %s\n", cfg.templatePath)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SessionPath returns the session file of a config file created by SetupTestConfig.
func SessionPath(tmpDir string) string {
	return filepath.Join(tmpDir, "session.yml")
}

// CreateCardsCSV writes a CSV file with a front,back header followed by the pairs.
func CreateCardsCSV(t *testing.T, dir string, pairs ...[2]string) string {
	t.Helper()

	var content strings.Builder
	content.WriteString("front,back\n")
	for _, pair := range pairs {
		content.WriteString(pair[0] + "," + pair[1] + "\n")
	}

	path := filepath.Join(dir, "cards.csv")
	require.NoError(t, os.WriteFile(path, []byte(content.String()), 0644))
	return path
}
