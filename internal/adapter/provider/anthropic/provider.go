package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

const (
	maxTokens       = 4096
	jsonInstruction = "\n\nOutput ONLY the JSON, no markdown, no explanations."
)

// Provider generates text with the Anthropic Messages API.
type Provider struct {
	client sdk.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the public Anthropic API.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider(model, logger, option.WithAPIKey(apiKey))
}

// NewProviderWithURL creates a Provider with a custom base URL and no retries (for testing).
func NewProviderWithURL(baseURL, apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider(model, logger,
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
}

func newProvider(model string, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	return &Provider{
		client: sdk.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// GenerateText returns the model's text reply to prompt.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt)
}

// GenerateJSON appends a JSON-only instruction to prompt.
// The Messages API has no JSON response mode.
func (p *Provider) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt+jsonInstruction)
}

func (p *Provider) generate(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "anthropic request",
		slog.String("model", p.model),
		slog.Int("prompt_len", len(prompt)),
	)

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("anthropic: messages (stop reason %q): %w", msg.StopReason, domain.ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.Int("text_len", len(text)),
		slog.String("stop_reason", string(msg.StopReason)),
	)
	return text, nil
}
