package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/praxis/internal/llm"
)

// isolateEnv pins HOME to a temp dir and blanks every PRAXIS_* variable
// the loader reads, so ambient shell state cannot leak into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"PRAXIS_CONFIG", "PRAXIS_ADDR", "PRAXIS_DATA_DIR",
		"PRAXIS_LOG_LEVEL", "PRAXIS_DEBUG",
		"PRAXIS_LLM_ENABLED", "PRAXIS_LLM_LOG_CALLS", "PRAXIS_LLM_PROVIDER",
		"PRAXIS_LLM_ENDPOINT", "PRAXIS_LLM_MODEL", "PRAXIS_LLM_API_KEY",
		"PRAXIS_LLM_TIMEOUT_MS", "PRAXIS_LLM_PLAN_TIMEOUT_MS",
		"PRAXIS_LLM_REVIEW_TIMEOUT_MS", "PRAXIS_LLM_ADJUST_TIMEOUT_MS",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, filepath.Join(home, DefaultDirName), cfg.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
}

func TestLoad_ReadsExplicitFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `
server:
  addr: ":9090"
data_dir: `+dir+`
log:
  level: debug
  debug: true
llm:
  enabled: true
  provider: openai
  model: gpt-4o-mini
  api_key: sk-from-file
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Debug)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-from-file", cfg.LLM.APIKey)
}

func TestLoad_FileEndpointSurvivesProviderSwitch(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, t.TempDir(), `
llm:
  provider: openai
  endpoint: https://gateway.internal/v1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal/v1", cfg.LLM.Endpoint)
}

func TestLoad_OpenAIWithoutEndpointGetsProviderDefault(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, t.TempDir(), `
llm:
  provider: openai
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultOpenAIEndpoint, cfg.LLM.Endpoint)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	isolateEnv(t)
	dataDir := t.TempDir()
	path := writeConfig(t, t.TempDir(), `
server:
  addr: ":9090"
log:
  level: warn
llm:
  model: llama3.2
`)
	t.Setenv("PRAXIS_ADDR", ":7070")
	t.Setenv("PRAXIS_DATA_DIR", dataDir)
	t.Setenv("PRAXIS_LOG_LEVEL", "error")
	t.Setenv("PRAXIS_LLM_MODEL", "qwen2.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
}

func TestLoad_PraxisConfigEnvNamesTheFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, t.TempDir(), "server:\n  addr: \":6060\"\n")
	t.Setenv("PRAXIS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
}

func TestLoad_DefaultLocationFile(t *testing.T) {
	home := isolateEnv(t)
	praxisDir := filepath.Join(home, DefaultDirName)
	require.NoError(t, os.MkdirAll(praxisDir, 0o755))
	writeConfig(t, praxisDir, "log:\n  level: warn\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	isolateEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, t.TempDir(), "server: [not a map\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PRAXIS_LOG_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PRAXIS_LLM_PROVIDER", "grok")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestLoad_ExpandsTildeInDataDir(t *testing.T) {
	home := isolateEnv(t)
	path := writeConfig(t, t.TempDir(), "data_dir: ~/praxis-data\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "praxis-data"), cfg.DataDir)
}
