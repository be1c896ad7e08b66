package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient using the Google GenAI SDK.
type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini requires an api key", ErrNotConfigured)
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &geminiClient{
		cfg:      cfg,
		client:   client,
		observer: observer,
	}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	temp, maxTok := c.cfg.taskParams(req)

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temp)),
		MaxOutputTokens: int32(maxTok),
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), genCfg)
	if err == nil {
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			err = fmt.Errorf("gemini returned an empty response")
		} else {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Provider:  ProviderGemini,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     c.cfg.Model,
				LatencyMs: latency,
			}, nil
		}
	}

	if ctx.Err() != nil {
		err = ErrTimeout
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Provider:  ProviderGemini,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

// Available reports whether the client holds credentials. The Gemini API
// has no cheap liveness probe, so a configured client is assumed reachable.
func (c *geminiClient) Available(ctx context.Context) bool {
	return c.client != nil && c.cfg.APIKey != ""
}
