package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

const jsonMIMEType = "application/json"

// Provider generates text with the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the public Gemini API.
func NewProvider(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Provider, error) {
	return newProvider(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(ctx context.Context, baseURL, apiKey, model string, logger *slog.Logger) (*Provider, error) {
	return newProvider(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{},
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	}, model, logger)
}

func newProvider(ctx context.Context, cfg *genai.ClientConfig, model string, logger *slog.Logger) (*Provider, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Provider{
		client: client,
		model:  model,
		log:    logger.With("adapter", "gemini"),
	}, nil
}

// GenerateText returns the model's text reply to prompt.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt, nil)
}

// GenerateJSON asks for an application/json reply.
func (p *Provider) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt, &genai.GenerateContentConfig{ResponseMIMEType: jsonMIMEType})
}

func (p *Provider) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	p.log.DebugContext(ctx, "gemini request",
		slog.String("model", p.model),
		slog.Int("prompt_len", len(prompt)),
		slog.Bool("json", cfg != nil),
	)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text, reason := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: generate content (finish reason %q): %w", reason, domain.ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "gemini response",
		slog.Int("text_len", len(text)),
		slog.String("finish_reason", reason),
	)
	return text, nil
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (text, finishReason string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ""
	}
	c := resp.Candidates[0]
	finishReason = string(c.FinishReason)
	if c.Content == nil {
		return "", finishReason
	}

	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), finishReason
}
