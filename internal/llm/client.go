package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
//
// Generate makes exactly one attempt. Callers that can degrade gracefully
// do so with deterministic fallbacks rather than by retrying.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the configured provider is reachable.
	Available(ctx context.Context) bool
}

// NewClient constructs the LLMClient named by cfg.Provider.
func NewClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg, observer)
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, observer)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// NewDisabledClient returns a client that rejects every call. It stands
// in when no provider is configured so the server can still boot and
// answer non-generation endpoints.
func NewDisabledClient() LLMClient { return disabledClient{} }

type disabledClient struct{}

func (disabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, ErrNotConfigured
}

func (disabledClient) Available(context.Context) bool { return false }

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	default:
		return "UNKNOWN"
	}
}
