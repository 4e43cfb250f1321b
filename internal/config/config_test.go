package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 70.0, cfg.HireThreshold, 0.001)
	assert.InDelta(t, 85.0, cfg.StrongHireThreshold, 0.001)
	assert.Equal(t, 8080, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"hire_threshold": 65,
		"strong_hire_threshold": 90,
		"port": 9090,
		"api_key": "secret"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 65.0, cfg.HireThreshold, 0.001)
	assert.InDelta(t, 90.0, cfg.StrongHireThreshold, 0.001)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config JSON")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HIRE_THRESHOLD", "60")
	t.Setenv("STRONG_HIRE_THRESHOLD", "80")
	t.Setenv("PORT", "9999")
	t.Setenv("API_KEY", "env-secret")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Default().FromEnv()
	require.NoError(t, err)

	assert.InDelta(t, 60.0, cfg.HireThreshold, 0.001)
	assert.InDelta(t, 80.0, cfg.StrongHireThreshold, 0.001)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "env-secret", cfg.APIKey)
	assert.True(t, cfg.LogJSON)
}

func TestFromEnv_EmptyKeepsCurrent(t *testing.T) {
	for _, name := range []string{"HIRE_THRESHOLD", "STRONG_HIRE_THRESHOLD", "PORT", "API_KEY", "LOG_JSON"} {
		t.Setenv(name, "")
	}

	cfg, err := Default().FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Default().FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := Default()
	cfg.HireThreshold = 90
	cfg.StrongHireThreshold = 80

	assert.Error(t, cfg.Validate())
}

func TestValidate_Ranges(t *testing.T) {
	cfg := Default()
	cfg.StrongHireThreshold = 120
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestLoad_AbsentFieldsKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"port": 9090}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.InDelta(t, 70.0, cfg.HireThreshold, 0.001)
	assert.InDelta(t, 85.0, cfg.StrongHireThreshold, 0.001)
}

func TestLoad_ExplicitZeroThresholdPreserved(t *testing.T) {
	path := writeConfigFile(t, `{"hire_threshold": 0, "strong_hire_threshold": 50}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, cfg.HireThreshold, 0.001)
	assert.InDelta(t, 50.0, cfg.StrongHireThreshold, 0.001)
	require.NoError(t, cfg.Validate())
}
