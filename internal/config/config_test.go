package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  data_dir: /tmp/jd
sources:
  naukri:
    enabled: true
    query: walkin ecommerce
  linkedin:
    enabled: true
    query: E-commerce Manager
    location: Pune
max_results: 5
filters:
  cities: [pune, pcmc]
  role_keywords: [ecommerce]
  walkin_keywords: [walk-in]
enrich:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/jd", cfg.App.DataDir)
	assert.True(t, cfg.Sources.Naukri.Enabled)
	assert.Equal(t, "Pune", cfg.Sources.LinkedIn.Location)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, []string{"pune", "pcmc"}, cfg.Filters.Cities)
	assert.True(t, cfg.Enrich.Enabled)
}

func TestNormalizeAndValidateDefaults(t *testing.T) {
	var cfg Config
	cfg.Mail = MailConfig{Username: "u@x.com", Password: "pw", Recipient: "r@x.com"}
	cfg.Filters.Cities = []string{" Pune ", "pune", "", "PCMC"}

	out, res := NormalizeAndValidate(cfg)

	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, []string{"Pune", "PCMC"}, out.Filters.Cities)
	assert.Equal(t, 10, out.MaxResults)
	assert.Equal(t, 15, out.Fetch.TimeoutSeconds)
	assert.Equal(t, ".", out.App.DataDir)
	assert.NotEmpty(t, res.Warnings) // no sources enabled, no role keywords
}

func TestValidateMissingCredentialsIsFatal(t *testing.T) {
	var cfg Config // no mail settings at all

	_, res := NormalizeAndValidate(cfg)

	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 3)
}

func TestEnsureUserConfigSeedsFromDefault(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(defaultPath, []byte("max_results: 7\n"), 0o644))

	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)

	cfg, err := Load(userPath)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxResults)

	// second call finds the existing file and doesn't re-copy
	again, err := EnsureUserConfig(dataDir, "does-not-exist.yml")
	require.NoError(t, err)
	assert.Equal(t, userPath, again)
}
