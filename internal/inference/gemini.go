package inference

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiCompleter is the production Completer backed by the Gemini API.
// A single instance is constructed at startup and shared across requests;
// the underlying genai client holds no per-call state and is safe for
// concurrent use.
type GeminiCompleter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	config  *genai.GenerateContentConfig
}

// NewGeminiCompleter creates the Gemini client once. A credential or model
// problem surfaces here, so the service can refuse inference requests
// outright instead of failing on every call.
func NewGeminiCompleter(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiCompleter, error) {
	if model == "" {
		model = DefaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiCompleter: create genai client: %w", err)
	}

	// Low temperature for near-deterministic output. Transaction
	// descriptions (pharmacy names, betting merchants) trip the default
	// safety thresholds, so every category is relaxed to BLOCK_NONE.
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}

	return &GeminiCompleter{
		client:  client,
		model:   model,
		timeout: timeout,
		config:  cfg,
	}, nil
}

// Complete sends the prompt and returns the raw model text.
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		return "", fmt.Errorf("GeminiCompleter.Complete: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("GeminiCompleter.Complete: empty response from model")
	}
	return text, nil
}
