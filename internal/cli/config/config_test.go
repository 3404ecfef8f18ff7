package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Audit)
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plantaudit.yaml")
	content := `data_dir: ./database
output: json
audit:
  disabled:
    - CT01
  severity:
    NR01: warning
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "./database", cfg.DataDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	require.NotNil(t, cfg.Audit)
	assert.Equal(t, []string{"CT01"}, cfg.Audit.Disabled)
	assert.Equal(t, "warning", cfg.Audit.Severity["NR01"])
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plantaudit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dir: ./from-file\n"), 0o644))

	t.Setenv("PLANTAUDIT_DATA_DIR", "./from-env")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "./from-env", cfg.DataDir)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("PLANTAUDIT_DATA_DIR", "./from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--data-dir", "./from-flag"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "./from-flag", cfg.DataDir)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat, "unchanged flags do not override")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
