package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocalMissingIsOptional(t *testing.T) {
	loader := NewTOMLLoader()

	cfg, err := loader.LoadLocal(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadLocalParsesTOML(t *testing.T) {
	dir := t.TempDir()
	content := `[server]
host = "127.0.0.1"
port = 9000

[llm]
base_url = "https://api.siliconflow.cn/v1"
model = "deepseek-ai/DeepSeek-V3"
temperature = 0.5

[generator]
output_dir = "out"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "promptdeck.toml"), []byte(content), 0o600))

	loader := NewTOMLLoader()
	cfg, err := loader.LoadLocal(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, "out", cfg.Generator.OutputDir)
}

func TestLoadLocalRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `[server]
port = 99999

[generator]
output_dir = "out"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "promptdeck.toml"), []byte(content), 0o600))

	loader := NewTOMLLoader()
	_, err := loader.LoadLocal(context.Background(), dir)
	assert.ErrorContains(t, err, "invalid config")
}

func TestCreateDefaultsRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	loader := NewTOMLLoader()
	require.NoError(t, loader.CreateDefaults(context.Background(), path))

	cfg, err := loader.loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "deepseek-ai/DeepSeek-V3", cfg.LLM.Model)
	assert.Equal(t, "generated", cfg.Generator.OutputDir)
}

func TestGetDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("PROMPTDECK_PORT", "8123")
	t.Setenv("SILICONFLOW_API_KEY", "sk-test")

	cfg := GetDefaultConfig()
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.NoError(t, cfg.Validate())
}
