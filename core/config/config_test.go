package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Warehouse.Driver)
	assert.Equal(t, "mdc_employee_master", cfg.Warehouse.StagingTable)
	assert.Equal(t, 3306, cfg.Warehouse.Port)
	assert.Equal(t, 15, cfg.API.LookupTimeoutSeconds)
	assert.False(t, cfg.Report.Enabled)
	assert.Equal(t, "reports", cfg.Report.Prefix)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://patients.example.com")
	t.Setenv("WAREHOUSE_STAGING_TABLE", "roster_raw")
	t.Setenv("REPORT_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://patients.example.com", cfg.API.BaseURL)
	assert.Equal(t, "roster_raw", cfg.Warehouse.StagingTable)
	assert.True(t, cfg.Report.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRETS_OBJECT=secrets/warehouse.json\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SECRETS_OBJECT") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "secrets/warehouse.json", cfg.Secrets.Object)
}
