package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDocsDir, cfg.DocsDir)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, "docs_dir: documentation\nformat: json\nmetrics_file: out.prom\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "documentation", cfg.DocsDir)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DOCS_LOCATION", "site/content")
	path := writeConfig(t, dir, "docs_dir: ${DOCS_LOCATION}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "site/content", cfg.DocsDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvDocsDir, "handbook")
	t.Setenv(EnvFormat, FormatHTML)
	path := writeConfig(t, dir, "docs_dir: documentation\nformat: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "handbook", cfg.DocsDir)
	assert.Equal(t, FormatHTML, cfg.Format)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvMetricsFile, "")
	require.NoError(t, os.Unsetenv(EnvMetricsFile))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvMetricsFile+"=from-dotenv.prom\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.prom", cfg.MetricsFile)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, "docs_dir: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "nil", cfg: nil, wantErr: true},
		{name: "text", cfg: &Config{DocsDir: "docs", Format: FormatText}},
		{name: "json", cfg: &Config{DocsDir: "docs", Format: FormatJSON}},
		{name: "html", cfg: &Config{DocsDir: "docs", Format: FormatHTML}},
		{name: "unknown format", cfg: &Config{DocsDir: "docs", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
