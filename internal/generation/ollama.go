// Package generation wraps a locally reachable Ollama language model used to
// compose answers from retrieved context.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	// DefaultModel is the Ollama model used for answer generation.
	DefaultModel = "mistral"

	// DefaultTimeout bounds a single generation call. Exceeding it surfaces
	// as an error to the caller, never an indefinite hang.
	DefaultTimeout = 60 * time.Second

	// temperature keeps answers focused on the supplied context.
	temperature = 0.1
)

// Client wraps an Ollama-hosted language model. The underlying connection is
// stateless per call and safe for concurrent use.
type Client struct {
	llm     *ollama.LLM
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient creates a generation client for the given Ollama server URL and
// model name. Empty arguments fall back to the langchaingo defaults and
// DefaultModel respectively. The server is not contacted here; call Health
// to verify reachability.
func NewClient(serverURL, model string, timeout time.Duration) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return &Client{
		llm:     llm,
		model:   model,
		timeout: timeout,
		logger:  slog.Default().With("component", "generation"),
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends the prompt to the language model and returns the generated
// text. The call is bounded by the configured timeout.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("ollama generation: %w", err)
	}
	c.logger.Debug("generation complete", "model", c.model, "duration", time.Since(start))

	return out, nil
}

// Health sends a one-word probe to verify the model is reachable and loaded.
// Invoked once at startup; failure means the chat path cannot be served.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := llms.GenerateFromSinglePrompt(ctx, c.llm, "Hello",
		llms.WithTemperature(temperature), llms.WithMaxTokens(4))
	if err != nil {
		return fmt.Errorf("ollama health check (model %s): %w", c.model, err)
	}
	return nil
}
