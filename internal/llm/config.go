package llm

import (
	"os"
	"strconv"
)

// Provider identifies which LLM backend serves generation calls.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// DefaultOpenAIEndpoint is used when the provider is openai and no
// endpoint is configured. Any OpenAI-compatible gateway works here.
const DefaultOpenAIEndpoint = "https://api.openai.com/v1"

// DefaultOllamaEndpoint is the local Ollama server address.
const DefaultOllamaEndpoint = "http://localhost:11434"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskPlan   TaskType = "plan"
	TaskReview TaskType = "review"
	TaskAdjust TaskType = "adjust"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled   bool
	LogCalls  bool
	Provider  Provider
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:   false,
		LogCalls:  false,
		Provider:  ProviderOllama,
		Endpoint:  DefaultOllamaEndpoint,
		Model:     "llama3.2",
		TimeoutMs: 45000,
		Tasks: map[TaskType]TaskConfig{
			TaskPlan:   {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
			TaskReview: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 20000},
			TaskAdjust: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays PRAXIS_LLM_* environment variables onto cfg.
// Callers that layer a config file under the environment start from
// the file-merged config instead of DefaultConfig.
func ApplyEnv(cfg LLMConfig) LLMConfig {
	if v := os.Getenv("PRAXIS_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PRAXIS_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PRAXIS_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("PRAXIS_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	} else if cfg.Provider == ProviderOpenAI && cfg.Endpoint == DefaultOllamaEndpoint {
		// Switching provider without naming an endpoint should not
		// leave the client pointed at the Ollama port.
		cfg.Endpoint = DefaultOpenAIEndpoint
	}
	if v := os.Getenv("PRAXIS_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PRAXIS_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PRAXIS_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskPlan, "PRAXIS_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReview, "PRAXIS_LLM_REVIEW_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAdjust, "PRAXIS_LLM_ADJUST_TIMEOUT_MS")

	return cfg
}

// Configured reports whether the provider has what it needs to accept
// calls. Key-based providers need an API key; ollama only an endpoint.
func (c LLMConfig) Configured() bool {
	if !c.Enabled {
		return false
	}
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		return c.APIKey != ""
	default:
		return c.Endpoint != ""
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// taskParams resolves the effective temperature and token budget for a
// request, honoring per-request overrides over the task defaults.
func (c LLMConfig) taskParams(req GenerateRequest) (float64, int) {
	tc := c.Tasks[req.Task]
	temp := tc.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := tc.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
