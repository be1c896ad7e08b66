// Package config resolves runtime settings from three layers applied in
// order: built-in defaults, an optional YAML file, and PRAXIS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/praxis/internal/llm"
)

// DefaultDirName is the directory under the user's home that holds the
// state file, logs, and the default config file.
const DefaultDirName = ".praxis"

// FileName is the config file name looked up inside the data directory
// when no explicit path is given.
const FileName = "config.yaml"

// DefaultAddr is the HTTP listen address when none is configured.
const DefaultAddr = ":8080"

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Addr string `yaml:"addr"`
}

// LogSettings configures the global logger.
type LogSettings struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// Config is the fully resolved runtime configuration.
type Config struct {
	Server  ServerSettings
	DataDir string
	Log     LogSettings
	LLM     llm.LLMConfig
}

// fileConfig mirrors the YAML document. Booleans are pointers so a file
// that omits them does not reset a value layered in earlier.
type fileConfig struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataDir string `yaml:"data_dir"`
	Log     struct {
		Level string `yaml:"level"`
		Debug *bool  `yaml:"debug"`
	} `yaml:"log"`
	LLM struct {
		Enabled   *bool  `yaml:"enabled"`
		LogCalls  *bool  `yaml:"log_calls"`
		Provider  string `yaml:"provider"`
		Endpoint  string `yaml:"endpoint"`
		Model     string `yaml:"model"`
		APIKey    string `yaml:"api_key"`
		TimeoutMs int    `yaml:"timeout_ms"`
	} `yaml:"llm"`
}

// Default returns the built-in configuration. The data directory lives
// under the user's home.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("config: finding home directory: %w", err)
	}
	return Config{
		Server:  ServerSettings{Addr: DefaultAddr},
		DataDir: filepath.Join(home, DefaultDirName),
		Log:     LogSettings{Level: "info"},
		LLM:     llm.DefaultConfig(),
	}, nil
}

// Load resolves the configuration. path names an explicit config file;
// when empty, PRAXIS_CONFIG is consulted, then <data_dir>/config.yaml.
// A missing file at the default location is not an error; a missing
// explicitly named file is.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		if v := os.Getenv("PRAXIS_CONFIG"); v != "" {
			path = v
			explicit = true
		} else {
			path = filepath.Join(cfg.DataDir, FileName)
		}
	}

	if err := cfg.mergeFile(path, explicit); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if parsed.Server.Addr != "" {
		c.Server.Addr = parsed.Server.Addr
	}
	if parsed.DataDir != "" {
		c.DataDir = parsed.DataDir
	}
	if parsed.Log.Level != "" {
		c.Log.Level = parsed.Log.Level
	}
	if parsed.Log.Debug != nil {
		c.Log.Debug = *parsed.Log.Debug
	}

	if parsed.LLM.Enabled != nil {
		c.LLM.Enabled = *parsed.LLM.Enabled
	}
	if parsed.LLM.LogCalls != nil {
		c.LLM.LogCalls = *parsed.LLM.LogCalls
	}
	if parsed.LLM.Provider != "" {
		c.LLM.Provider = llm.Provider(parsed.LLM.Provider)
	}
	if parsed.LLM.Endpoint != "" {
		c.LLM.Endpoint = parsed.LLM.Endpoint
	}
	if parsed.LLM.Model != "" {
		c.LLM.Model = parsed.LLM.Model
	}
	if parsed.LLM.APIKey != "" {
		c.LLM.APIKey = parsed.LLM.APIKey
	}
	if parsed.LLM.TimeoutMs > 0 {
		c.LLM.TimeoutMs = parsed.LLM.TimeoutMs
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PRAXIS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PRAXIS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("PRAXIS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PRAXIS_DEBUG"); v != "" {
		c.Log.Debug, _ = strconv.ParseBool(v)
	}
	c.LLM = llm.ApplyEnv(c.LLM)
}

func (c *Config) normalize() error {
	dir, err := expandHome(c.DataDir)
	if err != nil {
		return err
	}
	c.DataDir = dir
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.LLM.Provider {
	case llm.ProviderOllama, llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}
	return nil
}

// expandHome resolves a leading ~/ against the user's home directory so
// config files can say data_dir: ~/.praxis.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: finding home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
